package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chriserin/featgen/internal/feature"
	"github.com/chriserin/featgen/internal/markup"
	"github.com/spf13/cobra"
)

var (
	nameFlag   string
	strictFlag bool
)

var translateCmd = &cobra.Command{
	Use:   "translate <file>",
	Short: "Print the feature generated from a single document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunTranslate(cmd.OutOrStdout(), args[0], nameFlag, strictFlag)
	},
}

func init() {
	translateCmd.Flags().StringVar(&nameFlag, "name", "", "Feature name (defaults to the file name without extension)")
	translateCmd.Flags().BoolVar(&strictFlag, "strict", false, "Fail on unknown node kinds")
	rootCmd.AddCommand(translateCmd)
}

func RunTranslate(w io.Writer, path, name string, strict bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := roleRegistry(cfg)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if name == "" {
		name = filenameWithoutExt(path)
	}

	mode := feature.ModePermissive
	if strict || cfg.Strict {
		mode = feature.ModeStrict
	}
	out, err := feature.Translate(name, markup.NewParser(reg).Parse(content),
		feature.WithMode(mode), feature.WithLogger(newLogger(cfg)))
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

func filenameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
