package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mapsketch/internal/cave"
	"mapsketch/internal/export"
	"mapsketch/internal/palette"
)

func (c *cli) caveCmd() *cobra.Command {
	var (
		output       string
		skipManifest bool
	)
	cmd := &cobra.Command{
		Use:   "cave <sketch>",
		Short: "Smooth a sketched cave with the cellular automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.cfg.BuildCavePalette()
			if err != nil {
				return err
			}
			g, err := c.quantizeSketch(args[0], p)
			if err != nil {
				return err
			}

			ca := cave.NewWithConfig(c.cfg.CaveAutomaton())
			ca.SetPalette(p)
			ca.SetLogger(c.logger)
			ca.SetGrid(g)
			n, err := ca.Run(c.cfg.Cave.Generations)
			if err != nil {
				return fmt.Errorf("cave generation %d: %w", n+1, err)
			}
			c.logger.Info("cave smoothed", "generations", n,
				"size", ca.Config().NeighborhoodSize, "threshold", ca.Config().NeighborhoodThreshold)

			if output == "" {
				output = defaultOutput(args[0], "cave")
			}
			m := export.NewManifest("cave", g)
			m.Source = args[0]
			m.Parameters = ca.Parameters()
			m.Connections = palette.Find(g, p.Stairs)
			return c.write(g, output, m, skipManifest)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (png, jpg or bmp); defaults next to the sketch")
	cmd.Flags().BoolVar(&skipManifest, "no-manifest", false, "do not write the YAML manifest")
	return cmd
}
