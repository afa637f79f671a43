package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
)

// Action is what the input layer asks of the application.
type Action interface{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}

type SuspendAction struct{}

type HelpToggleAction struct{}

type HelpHideAction struct{}

// YankAction copies the current deep link to the clipboard.
type YankAction struct{}

// HistoryAction walks the fragment history. Direction is "back" or
// "forward".
type HistoryAction struct {
	Direction string
}

type ResizeAction struct {
	Width  int
	Height int
}

// RouteAction carries a semantic event for the router.
type RouteAction struct {
	Event statepkg.Event
}

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan  chan Action
	helpVisible func() bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetHelpVisible installs the query used to route keys to the help overlay.
func (ih *InputHandler) SetHelpVisible(fn func() bool) {
	ih.helpVisible = fn
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ih.helpVisible != nil && ih.helpVisible() {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ih.actionChan <- QuitAction{}
			return false
		case tcell.KeyEscape:
			ih.actionChan <- HelpHideAction{}
		case tcell.KeyRune:
			if r := ev.Rune(); r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- HelpHideAction{}
			}
		}
		return true
	}

	// Reserved keys never reach the keymap.
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- QuitAction{}
		return false
	case tcell.KeyCtrlZ:
		ih.actionChan <- SuspendAction{}
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			ih.actionChan <- QuitAction{}
			return false
		case '[':
			ih.actionChan <- HistoryAction{Direction: "back"}
			return true
		case ']':
			ih.actionChan <- HistoryAction{Direction: "forward"}
			return true
		case '?':
			ih.actionChan <- HelpToggleAction{}
			return true
		case 'y':
			ih.actionChan <- YankAction{}
			return true
		}
	}

	if name := KeyName(ev); name != "" {
		ih.actionChan <- RouteAction{Event: statepkg.KeyPress{Key: name}}
	}
	return true
}

var keyNames = map[tcell.Key]string{
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyEscape:     "Escape",
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyBacktab:    "Backtab",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
}

// KeyName returns the identifier bindings use for ev: a named key such as
// "ArrowLeft" or "Space", the rune itself, or tcell's name for anything
// else (e.g. "F5", "Ctrl+N").
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "Space"
		}
		return string(r)
	}
	if name, ok := keyNames[ev.Key()]; ok {
		return name
	}
	return ev.Name()
}
