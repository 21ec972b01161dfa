package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chriserin/featgen/internal/config"
	"github.com/chriserin/featgen/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize featgen in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	// config file
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := config.Write(configPath, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s created\n", configPath)
	} else {
		fmt.Fprintf(w, "%s already exists\n", configPath)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	for _, dir := range []string{cfg.Source, cfg.Output} {
		_, err := os.Stat(dir)
		exists := err == nil
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s directory: %w", dir, err)
		}
		if exists {
			fmt.Fprintf(w, "%s/ already exists\n", dir)
		} else {
			fmt.Fprintf(w, "%s/ created\n", dir)
		}
	}

	// database
	dbPath := cfg.DatabasePath()
	_, err = os.Stat(dbPath)
	dbExists := err == nil
	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintf(w, "%s already exists\n", dbPath)
	} else {
		fmt.Fprintf(w, "%s created\n", dbPath)
	}

	return ensureIgnored(w, filepath.ToSlash(dbPath))
}

const gitignore = ".gitignore"

// ensureIgnored appends entry to .gitignore unless a line already names it.
func ensureIgnored(w io.Writer, entry string) error {
	data, err := os.ReadFile(gitignore)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", gitignore, err)
	}
	created := os.IsNotExist(err)

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == entry {
			fmt.Fprintf(w, "%s already ignores %s\n", gitignore, entry)
			return nil
		}
	}

	f, err := os.OpenFile(gitignore, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", gitignore, err)
	}
	line := entry + "\n"
	if len(data) > 0 && data[len(data)-1] != '\n' {
		line = "\n" + line
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", gitignore, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", gitignore, err)
	}

	if created {
		fmt.Fprintf(w, "%s created, ignoring %s\n", gitignore, entry)
	} else {
		fmt.Fprintf(w, "%s updated, ignoring %s\n", gitignore, entry)
	}
	return nil
}
