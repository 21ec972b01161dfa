package cmd

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chriserin/featgen/internal/ui"
	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate generated feature files with the Gherkin parser",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCheck(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func RunCheck(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.Output); os.IsNotExist(err) {
		return fmt.Errorf("run `featgen init` first")
	}

	var paths []string
	err = filepath.WalkDir(cfg.Output, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".feature" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", cfg.Output, err)
	}

	invalid := 0
	for _, path := range paths {
		if err := checkFeature(path); err != nil {
			ui.ErrLine(w, path, err)
			invalid++
			continue
		}
		ui.OkLine(w, path)
	}

	fmt.Fprintf(w, "checked %d features\n", len(paths))
	if invalid > 0 {
		return fmt.Errorf("%d invalid features", invalid)
	}
	return nil
}

func checkFeature(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = gherkin.ParseGherkinDocument(bytes.NewReader(content), (&messages.Incrementing{}).NewId)
	return err
}
