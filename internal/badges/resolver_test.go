package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rolesync/internal/progression/models"
)

func speedrun(t float64) *float64 { return &t }

func TestResolveMetabitWealth(t *testing.T) {
	tests := []struct {
		name     string
		metabits int64
		want     []ID
	}{
		{"below lowest threshold", 999_999_999, nil},
		{"explorer at exact threshold", 1_000_000_000, []ID{RealityExplorer}},
		{"explorer above threshold", 5_000_000_000, []ID{RealityExplorer}},
		{"expert at exact threshold", 1_000_000_000_000, []ID{RealityExpert}},
		{"legend at exact threshold", 100_000_000_000_000, []ID{RealityLegend}},
		{"legend far beyond", 900_000_000_000_000, []ID{RealityLegend}},
		{"zero", 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Resolve(&models.Record{Metabits: tc.metabits})
			assert.Equal(t, tc.want, res.Tracks(TrackMetabitWealth))
			assert.LessOrEqual(t, len(res.Tracks(TrackMetabitWealth)), 1)
		})
	}
}

func TestResolvePaleontology(t *testing.T) {
	tests := []struct {
		name     string
		dinoRank int
		want     []ID
	}{
		{"unranked", 0, nil},
		{"below base threshold", 25, nil},
		{"base at exact threshold", 26, []ID{Paleontologist}},
		{"base below first prestige", 49, []ID{Paleontologist}},
		{"progressive at prestige one", 50, []ID{ProgressivePaleontologist}},
		{"progressive through rank 99", 99, []ID{ProgressivePaleontologist}},
		{"mid prestige falls back to base", 250, []ID{Paleontologist}},
		{"legend at exactly rank 500", 500, []ID{PaleontologistLegend}},
		{"legend clamps beyond rank 500", 50_000, []ID{PaleontologistLegend}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Resolve(&models.Record{DinoRank: tc.dinoRank})
			assert.Equal(t, tc.want, res.Tracks(TrackPaleontology))
			assert.LessOrEqual(t, len(res.Tracks(TrackPaleontology)), 1)
		})
	}
}

func TestResolveSimulationMastery(t *testing.T) {
	tests := []struct {
		name string
		rec  models.Record
		want []ID
	}{
		{"nothing attempted", models.Record{}, nil},
		{
			"speedrun never attempted does not qualify",
			models.Record{SingularitySpeedrunTime: nil},
			nil,
		},
		{
			"sonic at exact threshold",
			models.Record{SingularitySpeedrunTime: speedrun(120)},
			[]ID{SonicSpeedsterOfSimulations},
		},
		{
			"speedster between thresholds",
			models.Record{SingularitySpeedrunTime: speedrun(300)},
			[]ID{SimulationSpeedster},
		},
		{
			"too slow for any speed tier",
			models.Record{SingularitySpeedrunTime: speedrun(300.5)},
			nil,
		},
		{
			"sharks alone",
			models.Record{AllSharksObtained: true},
			[]ID{SharkCollector},
		},
		{
			"speed and sharks stack",
			models.Record{SingularitySpeedrunTime: speedrun(90), AllSharksObtained: true},
			[]ID{SonicSpeedsterOfSimulations, SharkCollector},
		},
		{
			"hidden achievements override everything",
			models.Record{
				AllHiddenAchievementsObtained: true,
				AllSharksObtained:             true,
				SingularitySpeedrunTime:       speedrun(60),
			},
			[]ID{FinderOfSemblanceSecrets},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Resolve(&tc.rec)
			assert.Equal(t, tc.want, res.Tracks(TrackSimulationMastery))
		})
	}
}

func TestResolveBetaTester(t *testing.T) {
	res := Resolve(&models.Record{BetaTester: true, Metabits: 1_000_000_000})
	assert.Equal(t, []ID{BetaTester}, res.Tracks(TrackBetaTester))
	assert.Equal(t, []ID{RealityExplorer}, res.Tracks(TrackMetabitWealth),
		"beta track is independent of other tracks")

	res = Resolve(&models.Record{})
	assert.Empty(t, res.Tracks(TrackBetaTester))
}

func TestResolveAllPreservesTrackOrder(t *testing.T) {
	res := Resolve(&models.Record{
		BetaTester:        true,
		Metabits:          1_000_000_000_000,
		DinoRank:          60,
		AllSharksObtained: true,
	})
	assert.Equal(t, []ID{RealityExpert, ProgressivePaleontologist, SharkCollector, BetaTester}, res.All())
}

func TestResolveWealthOnlyRecord(t *testing.T) {
	// A record with a billion metabits and nothing else resolves to the
	// explorer badge alone.
	res := Resolve(&models.Record{Metabits: 1_000_000_000})
	assert.Equal(t, []ID{RealityExplorer}, res.All())
}

func TestResolveIgnoresInformationalFields(t *testing.T) {
	res := Resolve(&models.Record{BeyondRank: 99, PrestigeRank: 7})
	assert.Empty(t, res.All())
}
