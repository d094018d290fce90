package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newUnitsCmd())
}

func newUnitsCmd() *cobra.Command {
	var civIndex, limit int
	cmd := &cobra.Command{
		Use:   "units <dat>",
		Short: "List a civilization's named units",
		Long: `Lists the units of one civilization with id, name, and hit points.
Empty slots (kept for id stability) are skipped in the listing but still
count toward the slot total.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnits(args, civIndex, limit)
		},
	}
	cmd.Flags().IntVar(&civIndex, "civ", 0, "Civilization index")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of units to list (0 = all)")
	return cmd
}

type unitRow struct {
	ID        int16  `json:"id"`
	Name      string `json:"name"`
	HitPoints int16  `json:"hit_points"`
}

func runUnits(args []string, civIndex, limit int) error {
	a, err := loadArchive(args[0])
	if err != nil {
		return err
	}

	civ, err := a.Civilization(civIndex)
	if err != nil {
		return err
	}

	rows := make([]unitRow, 0, civ.UnitCount())
	for i := 0; i < civ.UnitCount(); i++ {
		u, err := civ.Unit(i)
		if err != nil {
			return err
		}
		if u.Name == "" {
			continue
		}
		rows = append(rows, unitRow{ID: u.ID, Name: u.Name, HitPoints: u.HitPoints})
	}

	shown := rows
	if limit > 0 && len(rows) > limit {
		shown = rows[:limit]
	}

	if jsonOut {
		return printJSON(shown)
	}

	printInfo("=== Units in %s (%d slots) ===\n", civ.Name, civ.UnitCount())
	for _, row := range shown {
		printInfo("  [%d] %s (HP: %d)\n", row.ID, row.Name, row.HitPoints)
	}
	if len(rows) > len(shown) {
		printInfo("  ... and %d more\n", len(rows)-len(shown))
	}
	return nil
}
