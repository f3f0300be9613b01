package window

// Key represents a keyboard key. The set is intentionally small for now and
// can grow as input handling is added.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Button represents a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is an input event produced by a window backend.
type Event interface {
	isEvent()
}

type KeyPress struct {
	Key Key
}

type KeyRelease struct {
	Key Key
}

type ButtonPress struct {
	Button Button
	X, Y   float32
}

type ButtonRelease struct {
	Button Button
	X, Y   float32
}

type CursorMove struct {
	X, Y float32
}

type Resize struct {
	Size Size
}

type Focus struct {
	Focused bool
}

func (KeyPress) isEvent()      {}
func (KeyRelease) isEvent()    {}
func (ButtonPress) isEvent()   {}
func (ButtonRelease) isEvent() {}
func (CursorMove) isEvent()    {}
func (Resize) isEvent()        {}
func (Focus) isEvent()         {}
