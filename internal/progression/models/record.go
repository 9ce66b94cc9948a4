// Package models defines the progression record persisted per identity
// token and the caller-writable update to it.
package models

import "time"

// Record is one player's progression, keyed by the derived identity token.
//
// Invariants:
//   - IdentityToken is the primary key; the caller's raw identifiers are
//     never stored.
//   - MemberID is the external membership identity, set when the account
//     was linked. The reconciler addresses the membership service with it.
//   - Metabits is an int64 because tier thresholds reach 1e14, beyond what
//     a float64 can hold exactly.
//   - SingularitySpeedrunTime is nil when the player never attempted the
//     speedrun; nil must never satisfy a speed-tier comparison.
//   - LastModified is stamped by the store adapter on every write.
type Record struct {
	IdentityToken                 string    `json:"-"`
	MemberID                      string    `json:"member_id"`
	BetaTester                    bool      `json:"beta_tester"`
	Metabits                      int64     `json:"metabits"`
	DinoRank                      int       `json:"dino_rank"`
	PrestigeRank                  int       `json:"prestige_rank"`
	BeyondRank                    int       `json:"beyond_rank"`
	SingularitySpeedrunTime       *float64  `json:"singularity_speedrun_time,omitempty"`
	AllSharksObtained             bool      `json:"all_sharks_obtained"`
	AllHiddenAchievementsObtained bool      `json:"all_hidden_achievements_obtained"`
	LastModified                  time.Time `json:"last_modified"`
}

// Update carries the fields a progression sync may change. Pointer fields
// distinguish "not sent" from zero values so an update only touches what it
// names.
type Update struct {
	BetaTester                    *bool    `json:"betaTester"`
	Metabits                      *int64   `json:"metabits"`
	DinoRank                      *int     `json:"dino_rank"`
	PrestigeRank                  *int     `json:"prestige_rank"`
	BeyondRank                    *int     `json:"beyond_rank"`
	SingularitySpeedrunTime       *float64 `json:"singularity_speedrun_time"`
	AllSharksObtained             *bool    `json:"all_sharks_obtained"`
	AllHiddenAchievementsObtained *bool    `json:"all_hidden_achievements_obtained"`
}

// Empty reports whether the update names no fields at all.
func (u Update) Empty() bool {
	return u.BetaTester == nil &&
		u.Metabits == nil &&
		u.DinoRank == nil &&
		u.PrestigeRank == nil &&
		u.BeyondRank == nil &&
		u.SingularitySpeedrunTime == nil &&
		u.AllSharksObtained == nil &&
		u.AllHiddenAchievementsObtained == nil
}

// Validate rejects values no game client can legitimately report.
func (u Update) Validate() error {
	if u.Metabits != nil && *u.Metabits < 0 {
		return ErrNegativeProgress
	}
	if u.DinoRank != nil && *u.DinoRank < 0 {
		return ErrNegativeProgress
	}
	if u.PrestigeRank != nil && *u.PrestigeRank < 0 {
		return ErrNegativeProgress
	}
	if u.BeyondRank != nil && *u.BeyondRank < 0 {
		return ErrNegativeProgress
	}
	if u.SingularitySpeedrunTime != nil && *u.SingularitySpeedrunTime <= 0 {
		return ErrInvalidSpeedrunTime
	}
	return nil
}

// Apply overlays the named fields onto a record, leaving the rest intact.
func (u Update) Apply(rec *Record) {
	if u.BetaTester != nil {
		rec.BetaTester = *u.BetaTester
	}
	if u.Metabits != nil {
		rec.Metabits = *u.Metabits
	}
	if u.DinoRank != nil {
		rec.DinoRank = *u.DinoRank
	}
	if u.PrestigeRank != nil {
		rec.PrestigeRank = *u.PrestigeRank
	}
	if u.BeyondRank != nil {
		rec.BeyondRank = *u.BeyondRank
	}
	if u.SingularitySpeedrunTime != nil {
		t := *u.SingularitySpeedrunTime
		rec.SingularitySpeedrunTime = &t
	}
	if u.AllSharksObtained != nil {
		rec.AllSharksObtained = *u.AllSharksObtained
	}
	if u.AllHiddenAchievementsObtained != nil {
		rec.AllHiddenAchievementsObtained = *u.AllHiddenAchievementsObtained
	}
}
