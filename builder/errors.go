// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with `%w`: "<Method>: <detail>: %w".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor is incompatible with the graph flags.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a construction step could not complete.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrMalformedEdgeList indicates an edge-list line without exactly two fields.
var ErrMalformedEdgeList = errors.New("builder: malformed edge list")
