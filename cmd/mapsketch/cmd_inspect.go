package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mapsketch/internal/palette"
	"mapsketch/internal/sketch"
)

func (c *cli) inspectCmd() *cobra.Command {
	var (
		k       int
		method  string
		against string
	)
	cmd := &cobra.Command{
		Use:   "inspect <sketch>",
		Short: "Report the colours a sketch uses and how they will be read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := sketch.ParseMethod(method)
			if err != nil {
				return err
			}
			var set palette.Set
			switch against {
			case "cave":
				if set, err = c.cfg.BuildCavePalette(); err != nil {
					return err
				}
			case "rooms":
				if set, err = c.cfg.BuildRoomPalette(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown palette %q (want cave or rooms)", against)
			}

			img, _, err := sketch.Load(args[0])
			if err != nil {
				return err
			}
			report, err := sketch.Inspect(img, k, m, set)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "COLOUR\tWEIGHT\tCLASS\tLAB\tQUANTIZER\n")
			for _, e := range report.Entries {
				action := "kept"
				switch {
				case e.Exact:
					action = "exact"
				case e.Snaps:
					action = "snaps to " + e.SnapsTo.Hex()
				}
				fmt.Fprintf(tw, "%s\t%.1f%%\t%s\t%.3f\t%s\n", e.Color.Hex(), e.Weight*100, e.Class, e.LabDistance, action)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&k, "colors", "k", 6, "number of colours to extract")
	cmd.Flags().StringVar(&method, "method", "dominantcolor", "extraction method: dominantcolor or kmeans")
	cmd.Flags().StringVar(&against, "palette", "cave", "palette to classify against: cave or rooms")
	return cmd
}
