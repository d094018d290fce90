package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCivsCmd())
}

func newCivsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "civs <dat>",
		Short: "List the civilizations in an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCivs(args)
		},
	}
	return cmd
}

type civRow struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Units int    `json:"units"`
}

func runCivs(args []string) error {
	a, err := loadArchive(args[0])
	if err != nil {
		return err
	}

	rows := make([]civRow, 0, a.CivilizationCount())
	for i := 0; i < a.CivilizationCount(); i++ {
		civ, err := a.Civilization(i)
		if err != nil {
			return err
		}
		rows = append(rows, civRow{Index: i, Name: civ.Name, Units: civ.UnitCount()})
	}

	if jsonOut {
		return printJSON(rows)
	}

	printInfo("=== Civilizations (%d) ===\n", len(rows))
	for _, row := range rows {
		printInfo("  [%d] %s (%d unit slots)\n", row.Index, row.Name, row.Units)
	}
	return nil
}
