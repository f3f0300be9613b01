package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/tinyrange/nowindow/internal/window"
	"github.com/tinyrange/nowindow/internal/window/nowindow"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	title := fs.String("title", "Server", "window title")
	width := fs.Uint64("width", 800, "window width")
	height := fs.Uint64("height", 600, "window height")
	ticks := fs.Int("ticks", 0, "stop after this many ticks (0 runs until interrupted)")
	interval := fs.Duration("interval", 16*time.Millisecond, "time between ticks")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	settings, err := newSettings(*title, *width, *height)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	win, err := nowindow.Build(settings)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	size := win.Size()
	slog.Info("Window", "title", win.Title(), "width", size.Width, "height", size.Height)

	n := loop(ctx, win, *interval, func(tick int) {
		if *ticks > 0 && tick >= *ticks {
			win.SetShouldClose(true)
		}
	})

	slog.Info("Stopped", "ticks", n)
}

func newSettings(title string, width, height uint64) (window.Settings, error) {
	if width > math.MaxUint32 {
		return window.Settings{}, fmt.Errorf("width %d out of range", width)
	}
	if height > math.MaxUint32 {
		return window.Settings{}, fmt.Errorf("height %d out of range", height)
	}
	return window.NewSettings(title, uint32(width), uint32(height)), nil
}

// handleEvent closes the window on Escape when the backend asks for it.
// Everything else is only logged.
func handleEvent(w window.Window, ev window.Event) {
	switch ev := ev.(type) {
	case window.KeyPress:
		if ev.Key != window.KeyEscape {
			break
		}
		if aw, ok := w.(window.AdvancedWindow); ok && aw.ExitOnEsc() {
			slog.Info("Escape pressed, closing")
			w.SetShouldClose(true)
			return
		}
	case window.Resize:
		slog.Info("Resize", "width", ev.Size.Width, "height", ev.Size.Height)
		return
	}
	slog.Debug("Event", "event", ev)
}

// loop drives w until it should close or ctx is done, calling update once per
// tick after draining pending events. It returns the number of ticks run.
func loop(ctx context.Context, w window.Window, interval time.Duration, update func(tick int)) int {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	tick := 0
	for !w.ShouldClose() {
		for {
			ev, ok := w.PollEvent()
			if !ok {
				break
			}
			handleEvent(w, ev)
		}
		if w.ShouldClose() {
			break
		}

		tick++
		update(tick)
		w.SwapBuffers()

		if w.ShouldClose() {
			break
		}

		select {
		case <-ctx.Done():
			w.SetShouldClose(true)
		case <-ticker.C:
		}
	}
	return tick
}
