package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/raster"
	"github.com/gogpu/decor/recording"
)

func newRenderCmd() *cobra.Command {
	var (
		output  string
		backend string
		miter   float64
	)
	cmd := &cobra.Command{
		Use:   "render <spec>",
		Short: "Render one shape document to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFrame(args[0])
			if err != nil {
				return err
			}
			p := decor.NewPainter(decor.WithStrokeMiterLimit(miter))

			c, err := recording.CanvasFor(p, f.req)
			if err != nil {
				return err
			}
			f.req = c.Place(f.req)
			r, err := f.record(p, c.Width, c.Height)
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			if err := writePNG(r, backend, output); err != nil {
				return err
			}
			decor.Logger().Info("rendered", "path", output, "width", c.Width, "height", c.Height, "commands", len(r.Commands()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG (default: the spec path with .png)")
	cmd.Flags().StringVar(&backend, "backend", raster.Name, "recording backend to play back on")
	cmd.Flags().Float64Var(&miter, "miter-limit", decor.DefaultMiterLimit, "stroke miter limit")
	return cmd
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered playback backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range recording.Backends() {
				cmd.Println(name)
			}
		},
	}
}
