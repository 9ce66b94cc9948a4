// Package badges defines the fixed badge table and the pure tier resolver.
//
// Badges are externally defined membership roles; this service only
// references their identifiers, grouped into independent progression
// tracks. It never creates or deletes badge definitions.
package badges

// ID is an opaque badge identifier understood by the membership service
// (a Discord role snowflake).
type ID string

// Track is an independent progression axis.
type Track string

const (
	TrackMetabitWealth     Track = "metabit_wealth"
	TrackPaleontology      Track = "paleontology"
	TrackSimulationMastery Track = "simulation_mastery"
	TrackBetaTester        Track = "beta_tester"
)

// TrackOrder is the fixed evaluation order. Gained-badge names are reported
// in this order, track by track.
var TrackOrder = []Track{
	TrackMetabitWealth,
	TrackPaleontology,
	TrackSimulationMastery,
	TrackBetaTester,
}

// Known badge identifiers.
const (
	RealityExplorer ID = "841213703410925568"
	RealityExpert   ID = "841213946878623764"
	RealityLegend   ID = "841214225975869460"

	Paleontologist            ID = "841215387123515412"
	ProgressivePaleontologist ID = "841215654254149652"
	PaleontologistLegend      ID = "841215950745071636"

	SimulationSpeedster         ID = "841216439671523348"
	SonicSpeedsterOfSimulations ID = "841216735941167124"
	SharkCollector              ID = "841217135973302292"
	FinderOfSemblanceSecrets    ID = "841217473137287188"

	BetaTester ID = "841218043734261780"
)

// names maps badge identifiers to the human-readable names used in the
// caller-facing summary and the operational log.
var names = map[ID]string{
	RealityExplorer:             "Reality Explorer",
	RealityExpert:               "Reality Expert",
	RealityLegend:               "Reality Legend",
	Paleontologist:              "Paleontologist",
	ProgressivePaleontologist:   "Progressive Paleontologist",
	PaleontologistLegend:        "Paleontologist Legend",
	SimulationSpeedster:         "Simulation Speedster",
	SonicSpeedsterOfSimulations: "Sonic Speedster of Simulations",
	SharkCollector:              "Shark Collector",
	FinderOfSemblanceSecrets:    "Finder of Semblance's Secrets",
	BetaTester:                  "Beta Tester",
}

// Name returns the human-readable badge name, or the raw identifier for
// badges outside the computed tracks.
func Name(id ID) string {
	if n, ok := names[id]; ok {
		return n
	}
	return string(id)
}

// PersistentAllowlist lists badges outside the computed tracks that a
// reconciliation preserves verbatim when the member already holds them.
// Everything else the member holds is stripped by the full-replace update.
var PersistentAllowlist = map[ID]struct{}{
	"841219800245143572": {}, // Server Booster
	"841220098953641012": {}, // Community Events Champion
	"841220415913525300": {}, // Mesozoic Valley Pioneer
	"841220683087314964": {}, // Translator
}
