package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
	inputui "github.com/kk-code-lab/svgdeck/internal/ui/input"
)

const (
	animationInterval = 16 * time.Millisecond
	yankNoticeTTL     = 1500 * time.Millisecond
)

// frameTimer ticks at the animation rate while armed.
type frameTimer struct {
	timer *time.Timer
	C     <-chan time.Time
}

func (f *frameTimer) arm() {
	if f.timer == nil {
		f.timer = time.NewTimer(animationInterval)
	} else {
		f.drain()
		f.timer.Reset(animationInterval)
	}
	f.C = f.timer.C
}

func (f *frameTimer) disarm() {
	if f.timer != nil {
		f.drain()
	}
	f.C = nil
}

func (f *frameTimer) drain() {
	if !f.timer.Stop() {
		select {
		case <-f.timer.C:
		default:
		}
	}
}

// pollEvents forwards screen events until the screen is finalized.
func (app *Application) pollEvents(out chan<- tcell.Event) {
	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}

// Run handles events until the user quits. Only this goroutine touches the
// router, so events are applied strictly in order.
func (app *Application) Run() {
	events := make(chan tcell.Event)
	go app.pollEvents(events)

	var resumed chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		resumed = make(chan os.Signal, 1)
		signal.Notify(resumed, sigs...)
		defer signal.Stop(resumed)
	}

	var ticks frameTimer
	defer ticks.disarm()

	dirty := true
	for !app.shouldQuit {
		if dirty {
			app.render()
			dirty = false
		}
		if app.shouldAnimate() {
			ticks.arm()
		} else {
			ticks.disarm()
		}

		select {
		case ev := <-events:
			dirty = app.handleEvent(ev)
		case <-ticks.C:
			app.renderer.Step()
			dirty = true
		case action := <-app.actionCh:
			dirty = app.handleAction(action)
		case <-resumed:
			dirty = app.resumeAfterStop()
		}

		if app.processActions() {
			dirty = true
		}
	}
}

func (app *Application) render() {
	app.renderer.Render(app.frame())
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		app.input.ProcessEvent(ev)
	case *tcell.EventMouse:
		return app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps a primary press to a click on the slide under the
// pointer and the wheel to zoom around it.
func (app *Application) handleMouse(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()
	pressed := buttons &^ app.lastButtons
	app.lastButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	if app.helpVisible {
		return false
	}

	x, y := ev.Position()
	switch {
	case buttons&tcell.WheelUp != 0, buttons&tcell.WheelDown != 0:
		pivot, ok := app.renderer.TargetPoint(x, y)
		if !ok {
			return false
		}
		direction := 1
		if buttons&tcell.WheelUp != 0 {
			direction = -1
		}
		app.actionCh <- inputui.RouteAction{Event: statepkg.Wheel{Pivot: pivot, Direction: direction}}
		return true

	case pressed&tcell.Button1 != 0:
		id, ok := app.renderer.HitTest(x, y)
		if !ok {
			app.logger.Debugw("click outside slides", "x", x, "y", y)
			return false
		}
		app.actionCh <- inputui.RouteAction{Event: statepkg.Click{RegionID: id}}
		return true
	}
	return false
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) shouldAnimate() bool {
	return app.renderer.Animating() || app.yankNoticeVisible()
}

func (app *Application) yankNoticeVisible() bool {
	return !app.lastYankTime.IsZero() && time.Since(app.lastYankTime) < yankNoticeTTL
}

func (app *Application) handleAction(action inputui.Action) bool {
	if action == nil {
		return false
	}

	switch a := action.(type) {
	case inputui.QuitAction:
		app.shouldQuit = true
		return false
	case inputui.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case inputui.ResizeAction:
		app.screen.Sync()
		return true
	case inputui.HelpToggleAction:
		app.helpVisible = !app.helpVisible
		return true
	case inputui.HelpHideAction:
		app.helpVisible = false
		return true
	case inputui.YankAction:
		return app.handleClipboard()
	case inputui.HistoryAction:
		return app.handleHistory(a.Direction)
	case inputui.RouteAction:
		app.lastError = nil
		app.router.Dispatch(a.Event)
		return true
	}
	return false
}

func (app *Application) handleHistory(direction string) bool {
	var (
		fragment string
		ok       bool
	)
	switch direction {
	case "back":
		fragment, ok = app.location.Back()
	case "forward":
		fragment, ok = app.location.Forward()
	}
	if !ok {
		return false
	}
	app.logger.Debugw("history", "direction", direction, "fragment", fragment)
	app.router.Dispatch(statepkg.ExternalStateChanged{Raw: fragment})
	return true
}
