package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTechsCmd())
}

func newTechsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "techs <dat>",
		Short: "List named technologies in an archive",
		Long: `Lists technologies with non-empty names. Reserved slots (empty names)
still count toward the table size but are skipped in the listing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTechs(args, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of technologies to list (0 = all)")
	return cmd
}

type techRow struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func runTechs(args []string, limit int) error {
	a, err := loadArchive(args[0])
	if err != nil {
		return err
	}

	total := a.TechnologyCount()
	rows := make([]techRow, 0, total)
	for i := 0; i < total; i++ {
		tech, err := a.Technology(i)
		if err != nil {
			return err
		}
		if tech.Name == "" {
			continue
		}
		rows = append(rows, techRow{Index: i, Name: tech.Name})
	}

	shown := rows
	if limit > 0 && len(rows) > limit {
		shown = rows[:limit]
	}

	if jsonOut {
		return printJSON(shown)
	}

	printInfo("=== Technologies (%d slots, %d named) ===\n", total, len(rows))
	for _, row := range shown {
		printInfo("  [%d] %s\n", row.Index, row.Name)
	}
	if len(rows) > len(shown) {
		printInfo("  ... and %d more\n", len(rows)-len(shown))
	}
	return nil
}
