package main

import (
	"github.com/spf13/cobra"

	"github.com/geniekit/geniekit/dat"
	"github.com/geniekit/geniekit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <dat>",
		Short: "Dump a decoded archive as JSON",
		Long: `Dumps the full decoded archive as JSON. Cross-references serialize as
the target index, or null where the record carries no reference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

type unitDump struct {
	ID               int16   `json:"id"`
	Name             string  `json:"name"`
	HitPoints        int16   `json:"hit_points"`
	LineOfSight      float32 `json:"line_of_sight"`
	GarrisonCapacity uint8   `json:"garrison_capacity"`
	StandingGraphic  *int    `json:"standing_graphic"`
	DyingGraphic     *int    `json:"dying_graphic"`
	TrainSound       *int    `json:"train_sound"`
	AttackEffect     *int    `json:"attack_effect"`
}

type civDump struct {
	Name  string     `json:"name"`
	Units []unitDump `json:"units"`
}

type techDump struct {
	Name         string `json:"name"`
	ResearchTime int16  `json:"research_time"`
	Effect       *int   `json:"effect"`
}

type archiveDump struct {
	FileVersion   string          `json:"file_version"`
	Civilizations []civDump       `json:"civilizations"`
	Technologies  []techDump      `json:"technologies"`
	Graphics      []types.Graphic `json:"graphics"`
	Sounds        []types.Sound   `json:"sounds"`
	Effects       []types.Effect  `json:"effects"`
}

func refIndex(r types.Ref) *int {
	if !r.Valid() {
		return nil
	}
	i := r.Index
	return &i
}

func dumpUnit(u *types.Unit) unitDump {
	return unitDump{
		ID:               u.ID,
		Name:             u.Name,
		HitPoints:        u.HitPoints,
		LineOfSight:      u.LineOfSight,
		GarrisonCapacity: u.GarrisonCapacity,
		StandingGraphic:  refIndex(u.StandingGraphic),
		DyingGraphic:     refIndex(u.DyingGraphic),
		TrainSound:       refIndex(u.TrainSound),
		AttackEffect:     refIndex(u.AttackEffect),
	}
}

func buildDump(a *dat.Archive) (*archiveDump, error) {
	out := &archiveDump{FileVersion: a.FormatVersion().String()}

	for i := 0; i < a.CivilizationCount(); i++ {
		civ, err := a.Civilization(i)
		if err != nil {
			return nil, err
		}
		cd := civDump{Name: civ.Name, Units: make([]unitDump, 0, civ.UnitCount())}
		for j := range civ.Units {
			cd.Units = append(cd.Units, dumpUnit(&civ.Units[j]))
		}
		out.Civilizations = append(out.Civilizations, cd)
	}
	for i := 0; i < a.TechnologyCount(); i++ {
		tech, err := a.Technology(i)
		if err != nil {
			return nil, err
		}
		out.Technologies = append(out.Technologies, techDump{
			Name:         tech.Name,
			ResearchTime: tech.ResearchTime,
			Effect:       refIndex(tech.Effect),
		})
	}
	for i := 0; i < a.GraphicCount(); i++ {
		g, err := a.Graphic(i)
		if err != nil {
			return nil, err
		}
		out.Graphics = append(out.Graphics, *g)
	}
	for i := 0; i < a.SoundCount(); i++ {
		s, err := a.Sound(i)
		if err != nil {
			return nil, err
		}
		out.Sounds = append(out.Sounds, *s)
	}
	for i := 0; i < a.EffectCount(); i++ {
		e, err := a.Effect(i)
		if err != nil {
			return nil, err
		}
		out.Effects = append(out.Effects, *e)
	}
	return out, nil
}

func runDump(args []string) error {
	a, err := loadArchive(args[0])
	if err != nil {
		return err
	}
	dump, err := buildDump(a)
	if err != nil {
		return err
	}
	return printJSON(dump)
}
