package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/mission.yaml
var defaultMissionYAML []byte

// embeddedDefaults maps variant keys to their embedded YAML.
var embeddedDefaults = map[string][]byte{
	"classic": defaultClassicYAML,
	"mission": defaultMissionYAML,
}

// DefaultClassic returns the classic variant: reach 2048, no combo, no
// revive, no missions.
func DefaultClassic() Variant {
	return Variant{
		Key:      "classic",
		Name:     "Classic",
		Target:   2048,
		FourProb: 0.10,
	}
}

// DefaultMission returns the mission variant with combo scoring and a
// one-shot revive.
func DefaultMission() Variant {
	return Variant{
		Key:      "mission",
		Name:     "Mission",
		Target:   2048,
		FourProb: 0.10,
		Revive: Revive{
			Enabled: true,
			Penalty: 2,
			Cells:   2,
		},
		Combo: Combo{
			Enabled: true,
			Base:    1,
			Step:    1,
			Max:     5,
		},
		Missions: []Mission{
			{ID: "first_256", Description: "Build a 256 tile", Type: MissionReachTile, Value: 256, Bonus: 200},
			{ID: "chain_5", Description: "Merge on 5 moves in a row", Type: MissionMergeStreak, Value: 5, Bonus: 300},
			{ID: "score_5000", Description: "Reach a score of 5000", Type: MissionReachScore, Value: 5000, Bonus: 500},
		},
	}
}

// hardcodedDefault returns the compiled-in fallback for a variant key.
func hardcodedDefault(key string) (Variant, bool) {
	switch key {
	case "classic":
		return DefaultClassic(), true
	case "mission":
		return DefaultMission(), true
	default:
		return Variant{}, false
	}
}
