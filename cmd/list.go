package cmd

import (
	"context"
	"io"

	"github.com/chriserin/featgen/internal/ui"
	"github.com/spf13/cobra"
)

var docFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scenarios of generated features",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), docFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&docFlag, "doc", "", "Only list scenarios of this document")
	rootCmd.AddCommand(listCmd)
}

func RunList(w io.Writer, doc string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	rows, err := store.Scenarios(context.Background(), doc)
	if err != nil {
		return err
	}

	docWidth := 0
	for _, r := range rows {
		if len(r.Document) > docWidth {
			docWidth = len(r.Document)
		}
	}
	for _, r := range rows {
		ui.ListRow(w, r.Document, r.Position, r.Name, docWidth)
	}
	return nil
}
