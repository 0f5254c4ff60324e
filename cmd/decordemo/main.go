// Command decordemo renders decorated shapes described in TOML or YAML
// documents.
//
//	decordemo render card.toml -o card.png
//	decordemo tween flat.toml raised.yaml -n 24 -o frames
//	decordemo trace card.toml
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gogpu/decor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "decordemo",
		Short:        "Render decorated shapes from TOML or YAML documents",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			decor.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log geometry adjustments")
	root.AddCommand(newRenderCmd(), newTweenCmd(), newTraceCmd(), newBackendsCmd())
	return root
}
