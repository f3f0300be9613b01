package window

// Size is a logical window size.
type Size struct {
	Width  uint32
	Height uint32
}

// Settings describes the window a backend should open.
type Settings struct {
	Title string
	Size  Size
}

// NewSettings returns settings for a window with the given title and size.
func NewSettings(title string, width, height uint32) Settings {
	return Settings{
		Title: title,
		Size:  Size{Width: width, Height: height},
	}
}

type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)

	Size() Size
	// DrawSize is the size of the drawable area in pixels. It can differ
	// from Size when the display is scaled.
	DrawSize() Size

	SwapBuffers()

	// PollEvent returns the next pending input event. It must not block;
	// ok is false when no event is available.
	PollEvent() (ev Event, ok bool)
}

type AdvancedWindow interface {
	Window

	Title() string
	SetTitle(value string)

	ExitOnEsc() bool
	SetExitOnEsc(value bool)

	SetCaptureCursor(value bool)
}

// Builder opens a window from settings. Backends that need a display
// return an error when one cannot be opened.
type Builder[W Window] func(settings Settings) (W, error)
