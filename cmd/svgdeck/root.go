package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	apppkg "github.com/kk-code-lab/svgdeck/internal/app"
	"github.com/kk-code-lab/svgdeck/internal/config"
	"github.com/kk-code-lab/svgdeck/internal/location"
	"github.com/kk-code-lab/svgdeck/internal/logging"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
	"github.com/kk-code-lab/svgdeck/internal/svg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	startAt   string
	stateFile string
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "svgdeck DECK.svg",
	Short: "Present an SVG canvas as a zoomable slide deck in the terminal",
	Long: `svgdeck shows the regions of an SVG document whose ids start with a
prefix (slide_ by default) as slides. Arrow keys and Space move between
slides, Escape zooms out to the whole canvas, clicking a region jumps to it
and the mouse wheel zooms around the pointer.

The current position is a fragment: a slide id, "overview" or
"viewBox=left,top,width,height". Pass one with --at to start there; the
fragment shown on exit is printed to stdout.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPresent,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath(), "config file path")
	rootCmd.Flags().StringVar(&startAt, "at", "", "fragment to start at (slide id, overview or viewBox=l,t,w,h)")
	rootCmd.Flags().StringVar(&stateFile, "state-file", "", "remember the position and history in this file")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write diagnostics to this file")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("state-file"); f != nil && f.Changed {
		cfg.StateFile = stateFile
	}
	if f := cmd.Flags().Lookup("log-file"); f != nil && f.Changed {
		cfg.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadPresentation(path string, cfg *config.Config, report statepkg.Reporter) (*statepkg.Presentation, error) {
	doc, err := svg.Load(path, svg.Options{
		Prefix:         cfg.SlidePrefix,
		OrderAttribute: cfg.OrderAttribute,
	})
	if err != nil {
		return nil, err
	}
	return statepkg.Discover(doc.Candidates, doc.Canvas, report), nil
}

func runPresent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	keymap, err := cfg.Keymap()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Close()
		// Without a log file, warnings wait until the terminal is released.
		_ = logger.Replay(cmd.ErrOrStderr())
	}()

	deck := args[0]
	start := time.Now()
	presentation, err := loadPresentation(deck, cfg, logger.Sugar())
	if err != nil {
		return err
	}
	logger.Info("loaded deck",
		zap.String("path", deck),
		zap.Int("slides", presentation.Len()),
		logging.Since(start),
	)

	loc, err := location.Open(cfg.StateFile)
	if err != nil {
		return err
	}

	app, err := apppkg.NewApplication(presentation, loc, apppkg.Options{
		Title:           filepath.Base(deck),
		Keymap:          keymap,
		ZoomFactor:      cfg.ZoomFactor,
		MarginRatio:     cfg.MarginRatio,
		Transition:      cfg.Transition,
		InitialFragment: startAt,
		Logger:          logger.Sugar(),
	})
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	app.Run()

	closeErr := app.Close()
	if frag := app.Fragment(); frag != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "#%s\n", frag)
	}
	return closeErr
}
