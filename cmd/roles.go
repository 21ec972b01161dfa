package cmd

import (
	"fmt"
	"io"

	"github.com/chriserin/featgen/internal/doctree"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles recognised as steps and their keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunRoles(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

func RunRoles(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := roleRegistry(cfg)
	if err != nil {
		return err
	}

	names := reg.Names()
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range names {
		kind, _ := reg.Lookup(name)
		keyword := string(kind)
		if kind == doctree.StepGeneric {
			keyword = "(no keyword)"
		}
		fmt.Fprintf(w, "%-*s  %s\n", width, name, keyword)
	}
	return nil
}
