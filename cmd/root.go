package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chriserin/featgen/internal/config"
	"github.com/chriserin/featgen/internal/db"
	"github.com/chriserin/featgen/internal/doctree"
	"github.com/chriserin/featgen/internal/markup"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "featgen",
	Short:        "Generate Gherkin feature files from Markdown documents",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.FileName, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// roleRegistry extends the default roles with the ones from the config.
func roleRegistry(cfg config.Config) (*markup.Registry, error) {
	reg := markup.DefaultRegistry()
	for name, keyword := range cfg.Roles {
		kind, ok := doctree.ParseStepKind(keyword)
		if !ok {
			return nil, fmt.Errorf("role %s: unknown keyword %q", name, keyword)
		}
		reg.Register(name, kind)
	}
	return reg, nil
}

func openStore(cfg config.Config) (*db.Store, func(), error) {
	if _, err := os.Stat(cfg.DatabasePath()); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("run `featgen init` first")
	}
	sqlDB, err := db.Open(cfg.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return db.NewStore(sqlDB), func() { sqlDB.Close() }, nil
}
