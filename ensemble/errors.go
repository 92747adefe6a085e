// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel and per-member errors for ensemble runs.

package ensemble

import (
	"errors"
	"fmt"
)

var (
	// ErrNoScorers indicates Run was called without any Scorer.
	ErrNoScorers = errors.New("ensemble: no scorers")

	// ErrNoSurvivors indicates every member failed.
	ErrNoSurvivors = errors.New("ensemble: no member survived")
)

// MemberFailure records one dropped member.
type MemberFailure struct {
	Index int
	Err   error
}

func (f MemberFailure) Error() string {
	return fmt.Sprintf("ensemble: member %d: %v", f.Index, f.Err)
}

func (f MemberFailure) Unwrap() error { return f.Err }
