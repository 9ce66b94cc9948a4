package badges

import "rolesync/internal/progression/models"

// Metabit wealth tiers, highest first. Thresholds are inclusive and compared
// on the raw stored magnitude.
var metabitTiers = []struct {
	threshold int64
	badge     ID
}{
	{100_000_000_000_000, RealityLegend},
	{1_000_000_000_000, RealityExpert},
	{1_000_000_000, RealityExplorer},
}

// Paleontology constants. Prestige is dino rank in units of 50, clamped to
// the 0..10 prestige ladder.
const (
	dinoRanksPerPrestige  = 50
	maxDinoPrestige       = 10
	legendPrestigeTier    = 10
	progressivePrestige   = 1
	paleontologistMinRank = 26
)

// Simulation mastery speedrun thresholds, in seconds.
const (
	sonicSpeedsterMaxTime = 120
	speedsterMaxTime      = 300
)

// Resolution holds the badges a record qualifies for, track by track.
type Resolution struct {
	tracks map[Track][]ID
}

// Tracks returns the resolved badges for one track.
func (r Resolution) Tracks(t Track) []ID {
	return r.tracks[t]
}

// All returns the union of all resolved badges in track-evaluation order.
func (r Resolution) All() []ID {
	var out []ID
	for _, t := range TrackOrder {
		out = append(out, r.tracks[t]...)
	}
	return out
}

// Resolve maps a progression record to the badge set it currently qualifies
// for. Pure and total: no I/O, no side effects, every record resolves to a
// possibly-empty result.
func Resolve(rec *models.Record) Resolution {
	return Resolution{tracks: map[Track][]ID{
		TrackMetabitWealth:     resolveMetabits(rec),
		TrackPaleontology:      resolvePaleontology(rec),
		TrackSimulationMastery: resolveSimulation(rec),
		TrackBetaTester:        resolveBetaTester(rec),
	}}
}

// resolveMetabits picks the highest qualifying wealth tier, or none below
// the lowest threshold. At most one badge.
func resolveMetabits(rec *models.Record) []ID {
	for _, tier := range metabitTiers {
		if rec.Metabits >= tier.threshold {
			return []ID{tier.badge}
		}
	}
	return nil
}

// resolvePaleontology resolves the dino prestige ladder. At most one badge.
func resolvePaleontology(rec *models.Record) []ID {
	prestige := rec.DinoRank / dinoRanksPerPrestige
	if prestige > maxDinoPrestige {
		prestige = maxDinoPrestige
	}
	switch {
	case prestige == legendPrestigeTier:
		return []ID{PaleontologistLegend}
	case prestige == progressivePrestige:
		return []ID{ProgressivePaleontologist}
	case rec.DinoRank >= paleontologistMinRank:
		return []ID{Paleontologist}
	}
	return nil
}

// resolveSimulation resolves the simulation mastery track. Completing every
// hidden achievement overrides the whole track with the secrets-finder
// badge; otherwise the speed tier and the shark collection are independent,
// so zero, one, or two badges are possible.
//
// A nil speedrun time means the run was never attempted and never qualifies.
func resolveSimulation(rec *models.Record) []ID {
	if rec.AllHiddenAchievementsObtained {
		return []ID{FinderOfSemblanceSecrets}
	}
	var out []ID
	if t := rec.SingularitySpeedrunTime; t != nil {
		switch {
		case *t <= sonicSpeedsterMaxTime:
			out = append(out, SonicSpeedsterOfSimulations)
		case *t <= speedsterMaxTime:
			out = append(out, SimulationSpeedster)
		}
	}
	if rec.AllSharksObtained {
		out = append(out, SharkCollector)
	}
	return out
}

// resolveBetaTester is evaluated regardless of the other tracks' outcomes.
func resolveBetaTester(rec *models.Record) []ID {
	if rec.BetaTester {
		return []ID{BetaTester}
	}
	return nil
}
