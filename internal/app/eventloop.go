package app

import (
	"errors"

	"github.com/dshills/fluxlist/internal/backend"
	"github.com/dshills/fluxlist/internal/view"
)

// eventLoop processes events one at a time. Every dispatch, store change
// and re-render triggered by an event completes before the next is polled.
func (app *Application) eventLoop(b backend.Backend) error {
	for {
		if err := app.handleBackendEvent(b.PollEvent()); err != nil {
			return err
		}
	}
}

// handleBackendEvent routes one event. Returns ErrQuit to stop the loop.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		return app.handleMouseEvent(ev)
	case backend.EventResize:
		app.view.Render()
		return nil
	case backend.EventInterrupt:
		return ErrQuit
	default:
		return nil
	}
}

func (app *Application) handleKeyEvent(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyEnter:
		app.click()
	case backend.KeyCtrlL:
		app.view.Render()
	case backend.KeyRune:
		switch ev.Rune {
		case 'q', 'Q':
			return ErrQuit
		case 'n', 'N', ' ':
			app.click()
		}
	}
	return nil
}

// handleMouseEvent clicks on the press edge of the left button only.
// Terminals repeat the held button on drag and motion events.
func (app *Application) handleMouseEvent(ev backend.Event) error {
	pressed := ev.MouseButton == backend.MouseLeft
	if pressed && !app.leftDown && app.view.HitButton(ev.MouseX, ev.MouseY) {
		app.click()
	}
	app.leftDown = pressed
	return nil
}

func (app *Application) click() {
	if err := app.view.Click(); err != nil && !errors.Is(err, view.ErrUnmounted) {
		app.logger.WithComponent("app").Warn("click: %v", err)
	}
}
