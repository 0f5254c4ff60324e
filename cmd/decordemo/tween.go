package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/raster"
	"github.com/gogpu/decor/recording"
)

var easings = map[string]decor.Easing{
	"linear":   decor.Linear,
	"in-out":   decor.EaseInOut,
	"out-back": decor.EaseOutBack,
}

func easingNames() string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// tweenFrames returns n frames stepping from one document to the other.
// Rect, scale and background follow the same eased progress as the spec.
func tweenFrames(from, to frame, ease decor.Easing, n int) []frame {
	tw := decor.Tween{From: from.req.Spec, To: to.req.Spec, Ease: ease}
	frames := make([]frame, n)
	for i := range frames {
		t := float64(i) / float64(n-1)
		e := ease(t)
		frames[i] = frame{
			req: decor.Request{
				Rect: decor.Rect{
					Min: from.req.Rect.Min.Lerp(to.req.Rect.Min, e),
					Max: from.req.Rect.Max.Lerp(to.req.Rect.Max, e),
				},
				Scale: lerpScale(from.req.Scale, to.req.Scale, e),
				Spec:  tw.At(t),
			},
			bg: from.bg.Lerp(to.bg, e),
		}
	}
	return frames
}

// lerpScale blends two pixel scales, reading 0 as 1 the way a paint does.
func lerpScale(a, b, t float64) float64 {
	if a == 0 {
		a = 1
	}
	if b == 0 {
		b = 1
	}
	return a + (b-a)*t
}

func newTweenCmd() *cobra.Command {
	var (
		dir     string
		backend string
		easing  string
		count   int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "tween <from> <to>",
		Short: "Render the transition between two shape documents as PNG frames",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ease, ok := easings[easing]
			if !ok {
				return fmt.Errorf("unknown easing %q (want one of %s)", easing, easingNames())
			}
			if count < 2 {
				return fmt.Errorf("need at least 2 frames, got %d", count)
			}
			from, err := loadFrame(args[0])
			if err != nil {
				return err
			}
			to, err := loadFrame(args[1])
			if err != nil {
				return err
			}

			p := decor.NewPainter()
			frames := tweenFrames(from, to, ease, count)

			// Every frame shares one canvas so the sequence lines up.
			reqs := make([]decor.Request, len(frames))
			for i, f := range frames {
				reqs[i] = f.req
			}
			c, err := recording.CanvasFor(p, reqs...)
			if err != nil {
				return err
			}
			for i := range frames {
				frames[i].req = c.Place(frames[i].req)
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			g, ctx := errgroup.WithContext(cmd.Context())
			if workers > 0 {
				g.SetLimit(workers)
			}
			for i, f := range frames {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					r, err := f.record(p, c.Width, c.Height)
					if err != nil {
						return fmt.Errorf("frame %d: %w", i, err)
					}
					return writePNG(r, backend, filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i)))
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			decor.Logger().Info("rendered tween", "dir", dir, "frames", count, "width", c.Width, "height", c.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "output", "o", "frames", "output directory")
	cmd.Flags().StringVar(&backend, "backend", raster.Name, "recording backend to play back on")
	cmd.Flags().StringVar(&easing, "ease", "in-out", "easing: "+easingNames())
	cmd.Flags().IntVarP(&count, "frames", "n", 24, "number of frames, endpoints included")
	cmd.Flags().IntVarP(&workers, "workers", "j", 4, "frames rendered at once (0 = unlimited)")
	return cmd
}
