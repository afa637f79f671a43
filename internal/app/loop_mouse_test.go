package app

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/svgdeck/internal/fragment"
	"github.com/kk-code-lab/svgdeck/internal/geometry"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
	inputui "github.com/kk-code-lab/svgdeck/internal/ui/input"
	"seehuhn.de/go/geom/vec"
)

// newMouseTestApp shows canvas units 0..200 x 0..100 on a 100x25 canvas
// area, so cell (x, y) covers canvas (2x, 4y) to (2x+2, 4y+4).
func newMouseTestApp(t *testing.T) *Application {
	t.Helper()
	v := geometry.Viewport{Width: 200, Height: 100}
	return newTestApp(t, nil, fragment.EncodeViewport(v))
}

func nextRoute(t *testing.T, app *Application) statepkg.Event {
	t.Helper()
	select {
	case action := <-app.actionCh:
		route, ok := action.(inputui.RouteAction)
		if !ok {
			t.Fatalf("expected RouteAction, got %T", action)
		}
		return route.Event
	default:
		t.Fatal("expected an action")
		return nil
	}
}

func expectNoRoute(t *testing.T, app *Application) {
	t.Helper()
	select {
	case action := <-app.actionCh:
		t.Fatalf("expected no action, got %#v", action)
	default:
	}
}

func TestClickOnSlideRoutesClick(t *testing.T) {
	app := newMouseTestApp(t)

	if !app.handleMouse(tcell.NewEventMouse(10, 5, tcell.Button1, 0)) {
		t.Fatal("expected the click to be handled")
	}
	click, ok := nextRoute(t, app).(statepkg.Click)
	if !ok || click.RegionID != "slide_a" {
		t.Fatalf("expected click on slide_a, got %#v", click)
	}
}

func TestClickFiresOnPressOnly(t *testing.T) {
	app := newMouseTestApp(t)

	app.handleMouse(tcell.NewEventMouse(10, 5, tcell.Button1, 0))
	nextRoute(t, app)

	// Dragging with the button held is not another click.
	if app.handleMouse(tcell.NewEventMouse(11, 5, tcell.Button1, 0)) {
		t.Fatal("held button must not click again")
	}
	expectNoRoute(t, app)

	app.handleMouse(tcell.NewEventMouse(11, 5, tcell.ButtonNone, 0))
	app.handleMouse(tcell.NewEventMouse(11, 5, tcell.Button1, 0))
	nextRoute(t, app)
}

func TestClickOutsideSlidesIsIgnored(t *testing.T) {
	app := newMouseTestApp(t)

	if app.handleMouse(tcell.NewEventMouse(60, 5, tcell.Button1, 0)) {
		t.Fatal("click between slides must be ignored")
	}
	expectNoRoute(t, app)
}

func TestMouseOnStatusLineIsIgnored(t *testing.T) {
	app := newMouseTestApp(t)

	app.handleMouse(tcell.NewEventMouse(10, 25, tcell.Button1, 0))
	app.handleMouse(tcell.NewEventMouse(10, 25, tcell.WheelUp, 0))
	expectNoRoute(t, app)
}

func TestWheelZoomsAroundPointer(t *testing.T) {
	app := newMouseTestApp(t)

	app.handleMouse(tcell.NewEventMouse(10, 5, tcell.WheelUp, 0))
	wheel, ok := nextRoute(t, app).(statepkg.Wheel)
	if !ok {
		t.Fatalf("expected Wheel event")
	}
	if wheel.Direction != -1 {
		t.Errorf("expected wheel up to zoom in, got direction %d", wheel.Direction)
	}
	want := vec.Vec2{X: 21, Y: 22}
	if math.Abs(wheel.Pivot.X-want.X) > 1e-9 || math.Abs(wheel.Pivot.Y-want.Y) > 1e-9 {
		t.Errorf("expected pivot %v, got %v", want, wheel.Pivot)
	}

	app.handleMouse(tcell.NewEventMouse(10, 5, tcell.WheelDown, 0))
	if wheel, ok := nextRoute(t, app).(statepkg.Wheel); !ok || wheel.Direction != 1 {
		t.Fatalf("expected wheel down to zoom out, got %#v", wheel)
	}
}

func TestMouseIgnoredWhileHelpVisible(t *testing.T) {
	app := newMouseTestApp(t)
	app.helpVisible = true

	app.handleMouse(tcell.NewEventMouse(10, 5, tcell.Button1, 0))
	expectNoRoute(t, app)
}

func TestWheelActionUpdatesFragment(t *testing.T) {
	app := newMouseTestApp(t)
	before := app.Fragment()

	app.handleMouse(tcell.NewEventMouse(10, 5, tcell.WheelUp, 0))
	app.processActions()

	if app.Fragment() == before {
		t.Fatalf("expected zoom to change the fragment, still %q", before)
	}
}
