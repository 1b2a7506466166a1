package scene

// EventType enumerates the pointer events the scene graph dispatches.
type EventType int

const (
	MouseEnter EventType = iota
	MouseLeave
	Click
)

// String returns the DOM-style event name.
func (t EventType) String() string {
	switch t {
	case MouseEnter:
		return "mouseenter"
	case MouseLeave:
		return "mouseleave"
	case Click:
		return "click"
	}
	return "unknown"
}

// Event is a dispatched pointer event. Target is the deepest node hit,
// or nil when the pointer was over empty canvas.
type Event struct {
	Type   EventType
	X, Y   float64
	Target Node
}

// Handler consumes a dispatched event.
type Handler func(*Event)
