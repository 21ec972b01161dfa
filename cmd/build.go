package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chriserin/featgen/internal/build"
	"github.com/chriserin/featgen/internal/config"
	"github.com/chriserin/featgen/internal/feature"
	"github.com/chriserin/featgen/internal/ui"
	"github.com/spf13/cobra"
)

var forceFlag bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate feature files for new and changed documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunBuild(cmd.Context(), cmd.OutOrStdout(), forceFlag)
	},
}

func init() {
	buildCmd.Flags().BoolVar(&forceFlag, "force", false, "Regenerate every document")
	rootCmd.AddCommand(buildCmd)
}

func RunBuild(ctx context.Context, w io.Writer, force bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
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
	report, err := builder.Build(ctx, force)
	if err != nil {
		return err
	}
	return printReport(w, report)
}

func newBuilder(cfg config.Config, store build.Store, logger *slog.Logger) (*build.Builder, error) {
	reg, err := roleRegistry(cfg)
	if err != nil {
		return nil, err
	}
	mode := feature.ModePermissive
	if cfg.Strict {
		mode = feature.ModeStrict
	}
	return build.New(build.Options{
		SourceDir: cfg.Source,
		OutputDir: cfg.Output,
		Extension: cfg.Extension,
		Workers:   cfg.Workers,
		Mode:      mode,
		Roles:     reg,
		Logger:    logger,
	}, store), nil
}

// printReport writes one line per document and returns an error when any
// document failed.
func printReport(w io.Writer, report *build.Report) error {
	for _, res := range report.Results {
		switch res.Status {
		case build.StatusGenerated:
			ui.GenLine(w, res.Document.SourcePath)
		case build.StatusSkipped:
			ui.SkpLine(w, res.Document.SourcePath)
		case build.StatusFailed:
			ui.ErrLine(w, res.Document.SourcePath, res.Err)
		}
	}

	failed := report.Count(build.StatusFailed)
	ui.SummaryLine(w, report.Count(build.StatusGenerated), report.Count(build.StatusSkipped), failed)
	if failed > 0 {
		return fmt.Errorf("%d documents failed", failed)
	}
	return nil
}
