// Package nowindow implements a window that never opens a display.
//
// It keeps just enough state to answer the window interfaces and is
// useful as the event loop of a headless server.
package nowindow

import "github.com/tinyrange/nowindow/internal/window"

type NoWindow struct {
	shouldClose bool
	title       string
	size        window.Size
}

var (
	_ window.AdvancedWindow     = &NoWindow{}
	_ window.Builder[*NoWindow] = Build
)

func New(settings window.Settings) *NoWindow {
	return &NoWindow{
		title: settings.Title,
		size:  settings.Size,
	}
}

// Build satisfies window.Builder. It never returns an error.
func Build(settings window.Settings) (*NoWindow, error) {
	return New(settings), nil
}

func (w *NoWindow) ShouldClose() bool { return w.shouldClose }

func (w *NoWindow) SetShouldClose(value bool) { w.shouldClose = value }

func (w *NoWindow) Size() window.Size { return w.size }

// DrawSize is always equal to Size; there is no display scale.
func (w *NoWindow) DrawSize() window.Size { return w.Size() }

func (w *NoWindow) SwapBuffers() {}

func (w *NoWindow) PollEvent() (window.Event, bool) { return nil, false }

func (w *NoWindow) Title() string { return w.title }

func (w *NoWindow) SetTitle(value string) { w.title = value }

// ExitOnEsc is always false since there is no keyboard.
func (w *NoWindow) ExitOnEsc() bool { return false }

func (w *NoWindow) SetExitOnEsc(bool) {}

func (w *NoWindow) SetCaptureCursor(bool) {}
