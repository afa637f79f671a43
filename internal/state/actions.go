package state

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Action is a navigation command a key binding or host can trigger.
type Action string

const (
	ActionNone     Action = "none"
	ActionPrevious Action = "previous"
	ActionNext     Action = "next"
	ActionFirst    Action = "first"
	ActionLast     Action = "last"
	ActionOverview Action = "overview"
)

// ParseAction validates a binding target read from configuration.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionNone, ActionPrevious, ActionNext, ActionFirst, ActionLast, ActionOverview:
		return a, nil
	case "":
		return ActionNone, nil
	default:
		return ActionNone, fmt.Errorf("unknown action %q", s)
	}
}

// Event is the closed set of semantic inputs the Router accepts.
type Event interface {
	isEvent()
}

// ===== POINTER EVENTS =====

// Click selects the region with the given id.
type Click struct {
	RegionID string
}

// Wheel zooms around Pivot (canvas coordinates). Direction > 0 zooms out,
// < 0 zooms in.
type Wheel struct {
	Pivot     vec.Vec2
	Direction int
}

// ===== KEYBOARD EVENTS =====

// KeyPress carries a key identifier such as "ArrowLeft", "Space" or "q".
type KeyPress struct {
	Key string
}

// ===== HOST EVENTS =====

// ExternalStateChanged reports that the persisted fragment was changed from
// outside (deep link, back/forward).
type ExternalStateChanged struct {
	Raw string
}

// Command runs an action without going through the keymap.
type Command struct {
	Action Action
}

func (Click) isEvent()                {}
func (Wheel) isEvent()                {}
func (KeyPress) isEvent()             {}
func (ExternalStateChanged) isEvent() {}
func (Command) isEvent()              {}
