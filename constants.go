package tjs

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "TJS Game"

	DefaultFOV  = 75
	DefaultNear = 0.1
	DefaultFar  = 1000

	DefaultBackground uint32 = 0x87ceeb

	DefaultAmbientLight     uint32 = 0x404040
	DefaultDirectionalLight uint32 = 0xffffff

	DefaultAxesSize = 50
)

var (
	DefaultCameraPosition           = [3]float32{0, 5, 5}
	DefaultDirectionalLightPosition = [3]float32{-5, 5, 10}
)

const (
	DefaultBoxWidth         = 1
	DefaultBoxHeight        = 1
	DefaultBoxDepth         = 1
	DefaultBoxColor  uint32 = 0xf5f5f5

	DefaultPlaneWidth         = 10
	DefaultPlaneHeight        = 10
	DefaultPlaneColor  uint32 = 0xffffff

	DefaultSphereRadius                = 1
	DefaultSphereWidthSegments         = 16
	DefaultSphereHeightSegments        = 12
	DefaultSphereColor          uint32 = 0xf5f5f5
)

const (
	// nameSuffixRange bounds the random suffix appended to colliding names.
	nameSuffixRange = 1000
	nameAttempts    = 16
)
