package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/recording"
)

func newTraceCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "trace <spec>...",
		Short: "Print the surface calls each document's shape produces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := make([]decor.Request, len(args))
			for i, path := range args {
				f, err := loadFrame(path)
				if err != nil {
					return err
				}
				reqs[i] = f.req
			}

			rs, err := recording.RecordAll(cmd.Context(), decor.NewPainter(), reqs, workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, r := range rs {
				fmt.Fprintf(out, "%s (%dx%d)\n", args[i], r.Width(), r.Height())
				if err := r.Dump(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "documents recorded at once (0 = unlimited)")
	return cmd
}
