package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chriserin/featgen/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show generated documents and the last build",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStatus(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func RunStatus(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	docs, scenarios, err := store.Counts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Documents: %d\n", docs)
	fmt.Fprintf(w, "Scenarios: %d\n", scenarios)

	summaries, err := store.Documents(ctx)
	if err != nil {
		return err
	}
	if len(summaries) > 0 {
		rows := make([]ui.DocumentRow, 0, len(summaries))
		for _, d := range summaries {
			rows = append(rows, ui.DocumentRow{Document: d.Name, Scenarios: d.Scenarios, Target: d.TargetPath})
		}
		fmt.Fprintln(w)
		ui.DocumentTable(w, rows)
		fmt.Fprintln(w)
	}

	last, err := store.LastBuild(ctx)
	if err != nil {
		return err
	}
	if last == nil {
		fmt.Fprintln(w, "Last build: never")
		return nil
	}
	fmt.Fprintf(w, "Last build: %s at %s\n", last.ID, last.StartedAt.Local().Format(time.DateTime))
	fmt.Fprintf(w, "  generated: %d\n  skipped: %d\n  failed: %d\n", last.Generated, last.Skipped, last.Failed)
	return nil
}
