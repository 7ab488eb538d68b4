package tjs

type EventType string

const (
	EventStart            EventType = "start"
	EventEnd              EventType = "end"
	EventResize           EventType = "resize"
	EventObjectRegistered EventType = "object-registered"
	EventObjectRemoved    EventType = "object-removed"
	EventObjectFailed     EventType = "object-failed"
	EventCollision        EventType = "collision"
)

type EventResizeData struct {
	Width  int
	Height int
}

type EventObjectData struct {
	Object GameObject
	Name   string
}

type EventCollisionData struct {
	A GameObject
	B GameObject
}
