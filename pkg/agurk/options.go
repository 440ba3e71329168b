package agurk

import "time"

// Options configure an Engine
type Options struct {
	// RetryBudget is how often a player may retry after an invalid turn
	RetryBudget int

	// DelayAfterCycle is the pause after every cycle except the last of a round
	DelayAfterCycle time.Duration

	// DelayAfterRound is the pause after every round
	DelayAfterRound time.Duration
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		RetryBudget:     2,
		DelayAfterCycle: 3 * time.Second,
		DelayAfterRound: 3 * time.Second,
	}
}
