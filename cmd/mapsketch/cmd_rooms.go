package main

import (
	"time"

	"github.com/spf13/cobra"

	"mapsketch/internal/export"
	"mapsketch/internal/palette"
	"mapsketch/internal/rooms"
)

func (c *cli) roomsCmd() *cobra.Command {
	var (
		output       string
		skipManifest bool
	)
	cmd := &cobra.Command{
		Use:   "rooms <sketch>",
		Short: "Grow rooms from painted or random room starts",
		Long: `rooms grows every painted room start into a rectangle. When the sketch
has no room starts, or --rooms is given, random starts are added first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.cfg.BuildRoomPalette()
			if err != nil {
				return err
			}
			g, err := c.quantizeSketch(args[0], p)
			if err != nil {
				return err
			}

			seed := c.cfg.Rooms.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			gr := rooms.New()
			gr.SetPalette(p)
			gr.SetSeed(seed)
			gr.SetLogger(c.logger)
			gr.SetGrid(g)

			painted := len(palette.Find(g, p.Start))
			if painted == 0 || cmd.Flags().Changed("rooms") {
				if err := gr.AddRandomRoomStarts(c.cfg.Rooms.Count); err != nil {
					return err
				}
			}
			if err := gr.GrowRoomsFromStarts(); err != nil {
				return err
			}
			c.logger.Info("rooms grown", "rooms", len(gr.Rooms()), "painted_starts", painted,
				"rounds", gr.Rounds(), "seed", seed)

			if output == "" {
				output = defaultOutput(args[0], "rooms")
			}
			m := export.NewManifest("rooms", g)
			m.Source = args[0]
			m.Seed = seed
			m.Parameters = gr.Parameters()
			m.Rooms = gr.Rooms()
			m.Connections = palette.Find(g, p.Stairs)
			return c.write(g, output, m, skipManifest)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (png, jpg or bmp); defaults next to the sketch")
	cmd.Flags().BoolVar(&skipManifest, "no-manifest", false, "do not write the YAML manifest")
	return cmd
}
