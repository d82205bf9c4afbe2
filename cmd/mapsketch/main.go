// Command mapsketch turns painted sketches into cave and room maps.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mapsketch/internal/config"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries the state shared by every subcommand.
type cli struct {
	flags      *config.Config
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{flags: config.Default(), out: out, errOut: errOut}
	root := &cobra.Command{
		Use:   "mapsketch",
		Short: "Turn painted sketches into cave and room maps",
		Long: `mapsketch reads a painted sketch, snaps it onto a grid of squares and
either smooths it into a cave or grows rooms from painted or random seeds.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", "", "YAML settings file")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")
	c.flags.Bind(pf)

	root.AddCommand(c.caveCmd(), c.roomsCmd(), c.inspectCmd(), c.blankCmd())
	return root
}

// setup resolves the layered settings and the logger before any subcommand
// runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.flags.Resolve(c.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := parseLevel(cfg.Log.Level)
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(c.logger)
	c.logger.Debug("settings resolved", "config", c.configPath, "scale", cfg.Scale.Pixel*cfg.Scale.Subpixel)
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// defaultOutput derives an output name next to the sketch.
func defaultOutput(sketchPath, suffix string) string {
	base := sketchPath
	if i := strings.LastIndex(base, "."); i > strings.LastIndex(base, "/") {
		base = base[:i]
	}
	return fmt.Sprintf("%s-%s.png", base, suffix)
}
