package model

import "time"

// RateResult is the outcome of one rate-limit check. Remaining never goes
// negative; ResetAt is the instant the current window ends.
type RateResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}
