package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/chriserin/featgen/internal/build"
	"github.com/chriserin/featgen/internal/ui"
	"github.com/spf13/cobra"
)

var debounceFlag time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild features whenever a document changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return RunWatch(ctx, cmd.OutOrStdout(), debounceFlag)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&debounceFlag, "debounce", 300*time.Millisecond, "Wait this long after the last change before rebuilding")
	rootCmd.AddCommand(watchCmd)
}

// RunWatch builds once, then rebuilds on every change until ctx is done.
func RunWatch(ctx context.Context, w io.Writer, debounce time.Duration) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	builder, err := newBuilder(cfg, store, newLogger(cfg))
	if err != nil {
		return err
	}

	report, err := builder.Build(ctx, false)
	if err != nil {
		return err
	}
	_ = printReport(w, report)

	watcher := build.NewWatcher(builder, debounce, func(report *build.Report, err error) {
		if err != nil {
			ui.ErrLine(w, cfg.Source, err)
			return
		}
		_ = printReport(w, report)
	})
	return watcher.Run(ctx)
}
