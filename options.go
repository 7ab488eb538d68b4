package tjs

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rhpo/tjs.go/engine"
)

// Options configures a game built with NewFromOptions. Zero values fall
// back to the defaults in constants.go.
type Options struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	LogLevel string `yaml:"log_level"`

	// DisableAnimationLoop lets the caller drive frames with Game.Tick.
	DisableAnimationLoop bool `yaml:"disable_animation_loop"`
	Collisions           bool `yaml:"collisions"`
	// Labels draws the name of every game object mesh.
	Labels bool `yaml:"labels"`

	Camera CameraOptions `yaml:"camera"`
	Scene  SceneOptions  `yaml:"scene"`
	Lights LightsOptions `yaml:"lights"`
}

type CameraOptions struct {
	FOV      float32     `yaml:"fov"`
	Near     float32     `yaml:"near"`
	Far      float32     `yaml:"far"`
	Position *[3]float32 `yaml:"position"`
	// AutoRotate orbits the camera around the origin, in radians per second.
	AutoRotate float32 `yaml:"auto_rotate"`
}

type SceneOptions struct {
	// Background is a 0xRRGGBB color.
	Background *uint32 `yaml:"background"`
	AxesHelper bool    `yaml:"axes_helper"`
}

type LightsOptions struct {
	DisableDefaults bool `yaml:"disable_defaults"`
}

// LoadOptions reads options from a YAML file.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options %s: %w", path, err)
	}

	opts, err := ParseOptions(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse options %s: %w", path, err)
	}
	return opts, nil
}

func ParseOptions(data []byte) (*Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, err
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (o *Options) Validate() error {
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, o.Width, o.Height)
	}
	if o.Camera.Near < 0 || o.Camera.Far < 0 || o.Camera.FOV < 0 {
		return fmt.Errorf("tjs: camera fov, near and far must not be negative")
	}
	if o.Camera.Near > 0 && o.Camera.Far > 0 && o.Camera.Near >= o.Camera.Far {
		return fmt.Errorf("tjs: camera near (%g) must be less than far (%g)", o.Camera.Near, o.Camera.Far)
	}
	return nil
}

// WithDefaults returns a copy of the options with every unset field filled
// in.
func (o Options) WithDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Camera.FOV == 0 {
		o.Camera.FOV = DefaultFOV
	}
	if o.Camera.Near == 0 {
		o.Camera.Near = DefaultNear
	}
	if o.Camera.Far == 0 {
		o.Camera.Far = DefaultFar
	}
	if o.Camera.Position == nil {
		position := DefaultCameraPosition
		o.Camera.Position = &position
	}
	if o.Scene.Background == nil {
		background := DefaultBackground
		o.Scene.Background = &background
	}
	return o
}

// NewFromOptions builds the scene, camera, lights and renderer described by
// opts and returns a game hosting them. A nil logger is replaced by one
// built from opts.LogLevel.
func NewFromOptions(opts *Options, logger *zap.Logger) (*Game, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	o := opts.WithDefaults()

	if logger == nil {
		l, err := NewLogger(o.LogLevel)
		if err != nil {
			return nil, err
		}
		logger = l
	}

	scene := engine.NewScene()
	scene.Background = engine.Hex(*o.Scene.Background)
	if o.Scene.AxesHelper {
		scene.Add(engine.NewAxesHelper(DefaultAxesSize))
	}

	if !o.Lights.DisableDefaults {
		ambient := engine.NewAmbientLight(DefaultAmbientLight)

		directional := engine.NewDirectionalLight(DefaultDirectionalLight, 1)
		p := DefaultDirectionalLightPosition
		directional.SetPosition(p[0], p[1], p[2])
		directional.CastShadow = true

		scene.Add(ambient, directional)
	}

	camera := engine.NewPerspectiveCamera(o.Camera.FOV, float32(o.Width)/float32(o.Height), o.Camera.Near, o.Camera.Far)
	p := *o.Camera.Position
	camera.SetPosition(p[0], p[1], p[2])
	camera.LookAt(mgl32.Vec3{})

	renderer := engine.NewRenderer(o.Width, o.Height)
	renderer.ShowLabels = o.Labels

	props := &GameProps{
		Scene:                scene,
		Camera:               camera,
		Renderer:             renderer,
		Width:                o.Width,
		Height:               o.Height,
		DisableAnimationLoop: o.DisableAnimationLoop,
		Collisions:           o.Collisions,
		Logger:               logger,
	}
	if o.Camera.AutoRotate != 0 {
		props.Controls = engine.NewAutoRotate(camera, o.Camera.AutoRotate)
	}

	return New(props)
}
