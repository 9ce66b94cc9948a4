package models

import "errors"

var (
	// ErrNegativeProgress rejects negative progress counters.
	ErrNegativeProgress = errors.New("progress values must be non-negative")

	// ErrInvalidSpeedrunTime rejects a non-positive speedrun time; a run
	// that never happened is omitted, not zero.
	ErrInvalidSpeedrunTime = errors.New("singularity_speedrun_time must be positive")
)
