package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/kk-code-lab/svgdeck/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var slidesCmd = &cobra.Command{
	Use:   "slides DECK.svg",
	Short: "List the slides of a deck in presentation order",
	Long: `Print every slide region found in the deck with its position, id and
canvas bounds. Data problems such as duplicate or reserved ids are reported
on stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger := logging.NewConsole(cmd.ErrOrStderr(), zapcore.WarnLevel)
		defer func() { _ = logger.Close() }()

		p, err := loadPresentation(args[0], cfg, logger.Sugar())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tID\tX\tY\tWIDTH\tHEIGHT")
		for i, s := range p.Slides() {
			b := s.Bounds
			fmt.Fprintf(w, "%d\t%s\t%g\t%g\t%g\t%g\n", i+1, s.ID, b.X, b.Y, b.Width, b.Height)
		}
		c := p.Canvas()
		fmt.Fprintf(w, "-\toverview\t%g\t%g\t%g\t%g\n", c.X, c.Y, c.Width, c.Height)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(slidesCmd)
}
