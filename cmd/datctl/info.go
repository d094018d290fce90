package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <dat>",
		Short: "Decode an archive and report its version and collection counts",
		Long: `The info command decodes a dat archive and displays its resolved file
version together with the sizes of the six top-level collections.

Example:
  datctl info empires2_x2_p1.dat
  datctl info empires2_x2_p1.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type archiveInfo struct {
	File          string `json:"file"`
	FileVersion   string `json:"file_version"`
	Game          string `json:"game"`
	Civilizations int    `json:"civilizations"`
	Technologies  int    `json:"technologies"`
	UnitTemplates int    `json:"unit_templates"`
	Graphics      int    `json:"graphics"`
	Sounds        int    `json:"sounds"`
	Effects       int    `json:"effects"`
}

func runInfo(args []string) error {
	path := args[0]
	a, err := loadArchive(path)
	if err != nil {
		return err
	}

	info := archiveInfo{
		File:          path,
		FileVersion:   a.FormatVersion().String(),
		Game:          a.GameVersion().String(),
		Civilizations: a.CivilizationCount(),
		Technologies:  a.TechnologyCount(),
		UnitTemplates: a.UnitTemplateCount(),
		Graphics:      a.GraphicCount(),
		Sounds:        a.SoundCount(),
		Effects:       a.EffectCount(),
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("File version: %s\n", info.FileVersion)
	printInfo("Game:         %s\n", info.Game)
	printInfo("\nCollections:\n")
	printInfo("  Civilizations:  %d\n", info.Civilizations)
	printInfo("  Technologies:   %d\n", info.Technologies)
	printInfo("  Unit templates: %d\n", info.UnitTemplates)
	printInfo("  Graphics:       %d\n", info.Graphics)
	printInfo("  Sounds:         %d\n", info.Sounds)
	printInfo("  Effects:        %d\n", info.Effects)
	return nil
}
