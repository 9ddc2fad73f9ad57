package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Show the table and column layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printTables(cmd.OutOrStdout(), dataset.Schema())
		return nil
	},
}

func printTables(w io.Writer, tables []dataset.Table) {
	bold := color.New(color.FgCyan, color.Bold)
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		bold.Fprintf(w, "📋 %s\n", t.Name)
		for _, c := range t.Columns {
			var notes []string
			if c.PrimaryKey {
				notes = append(notes, "primary key")
			}
			if c.References != "" {
				notes = append(notes, "→ "+c.References)
			}
			if c.Nullable {
				notes = append(notes, "nullable")
			}
			line := fmt.Sprintf("  %-22s %-8s", c.Name, c.Kind)
			if len(notes) > 0 {
				line += " " + strings.Join(notes, ", ")
			}
			fmt.Fprintln(w, strings.TrimRight(line, " "))
		}
	}
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
