package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/svgdeck/internal/location"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
	inputui "github.com/kk-code-lab/svgdeck/internal/ui/input"
	renderui "github.com/kk-code-lab/svgdeck/internal/ui/render"
	"go.uber.org/zap"
)

// Options configures an Application. Zero values select the defaults,
// except MarginRatio where zero fits slides exactly.
type Options struct {
	// Title is shown in the status line, usually the deck file name.
	Title       string
	Keymap      statepkg.Keymap
	ZoomFactor  float64
	MarginRatio float64
	Transition  time.Duration
	// InitialFragment overrides the fragment stored in the location.
	InitialFragment string
	Logger          *zap.SugaredLogger
}

// Application represents the running app.
type Application struct {
	screen         tcell.Screen
	router         *statepkg.Router
	renderer       *renderui.Renderer
	input          *inputui.InputHandler
	location       *location.Location
	keymap         statepkg.Keymap
	logger         *zap.SugaredLogger
	actionCh       chan inputui.Action
	title          string
	helpVisible    bool
	shouldQuit     bool
	lastButtons    tcell.ButtonMask
	clipboardCmd   []string
	clipboardAvail bool
	lastYankTime   time.Time
	lastError      error
}

// NewApplication opens the terminal and shows p.
func NewApplication(p *statepkg.Presentation, loc *location.Location, opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	app := newApplication(screen, p, loc, opts)
	app.clipboardCmd, app.clipboardAvail = detectClipboard()
	app.start(opts.InitialFragment)
	return app, nil
}

func newApplication(screen tcell.Screen, p *statepkg.Presentation, loc *location.Location, opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	keymap := opts.Keymap
	if keymap == nil {
		keymap = statepkg.DefaultKeymap()
	}
	if loc == nil {
		loc = location.New()
	}

	actionCh := make(chan inputui.Action, 10)
	renderer := renderui.NewRenderer(screen, p, opts.Transition)
	router := statepkg.NewRouter(p, renderer, loc, logger, statepkg.Options{
		Keymap:      keymap,
		ZoomFactor:  opts.ZoomFactor,
		MarginRatio: opts.MarginRatio,
	})

	app := &Application{
		screen:   screen,
		router:   router,
		renderer: renderer,
		input:    inputui.NewInputHandler(actionCh),
		location: loc,
		keymap:   keymap,
		logger:   logger,
		actionCh: actionCh,
		title:    opts.Title,
	}
	app.input.SetHelpVisible(func() bool { return app.helpVisible })
	return app
}

// start shows the initial position: the explicit fragment if given, else
// whatever the location remembers.
func (app *Application) start(fragment string) {
	if fragment == "" {
		fragment = app.location.Read()
	}
	app.logger.Debugw("starting presentation", "fragment", fragment, "slides", app.router.Presentation().Len())
	app.router.Dispatch(statepkg.ExternalStateChanged{Raw: fragment})
}

// Close cleans up resources and saves the location.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	if err := app.location.Save(); err != nil {
		return fmt.Errorf("saving location: %w", err)
	}
	return nil
}

// Fragment returns the current fragment to output on exit.
func (app *Application) Fragment() string {
	return app.location.Read()
}

// Router exposes the navigation core.
func (app *Application) Router() *statepkg.Router {
	return app.router
}

func (app *Application) frame() renderui.Frame {
	f := renderui.Frame{
		Title:        app.title,
		Position:     app.router.Navigator().Current(),
		Fragment:     app.location.Read(),
		Keymap:       app.keymap,
		HelpVisible:  app.helpVisible,
		CanGoBack:    app.location.CanGoBack(),
		CanGoForward: app.location.CanGoForward(),
	}
	switch {
	case app.lastError != nil:
		f.Notice = app.lastError.Error()
	case app.yankNoticeVisible():
		f.Notice = "copied"
	}
	return f
}
