package main

import (
	"errors"

	"github.com/spf13/cobra"

	"mapsketch/internal/core"
	"mapsketch/internal/export"
	"mapsketch/internal/sketch"
)

func (c *cli) blankCmd() *cobra.Command {
	var (
		output string
		fill   string
	)
	cmd := &cobra.Command{
		Use:   "blank",
		Short: "Write an empty canvas to paint a sketch on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("blank: --output is required")
			}
			colour, err := core.ParseHex(fill)
			if err != nil {
				return err
			}
			scale := c.cfg.Scale.Pixel * c.cfg.Scale.Subpixel
			img, err := sketch.Blank(c.cfg.Canvas.Cols, c.cfg.Canvas.Rows, scale, colour)
			if err != nil {
				return err
			}
			if err := export.Save(output, img); err != nil {
				return err
			}
			c.logger.Info("canvas written", "path", output,
				"cols", c.cfg.Canvas.Cols, "rows", c.cfg.Canvas.Rows, "scale", scale)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "canvas image (png, jpg or bmp)")
	cmd.Flags().StringVar(&fill, "fill", "#ffffff", "canvas colour")
	return cmd
}
