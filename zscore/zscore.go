// SPDX-License-Identifier: MIT
// File: zscore.go
// Role: Standard score of an observed statistic against an ensemble.
// Sentinels:
//   - empty ensemble               → NaN (Undefined)
//   - observed == mean             → 0, whatever the variance
//   - zero variance, other numerator → ±Inf

package zscore

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Undefined returns the sentinel for a z-score without an ensemble.
func Undefined() float64 { return math.NaN() }

// IsUndefined reports whether z is the Undefined sentinel.
func IsUndefined(z float64) bool { return math.IsNaN(z) }

// Compute returns (observed − mean) / std with the population standard
// deviation of ensemble.
func Compute(observed float64, ensemble []float64) float64 {
	if len(ensemble) == 0 {
		return Undefined()
	}
	mean, std := stat.PopMeanStdDev(ensemble, nil)
	num := observed - mean
	if num == 0 {
		return 0
	}
	if std == 0 {
		return math.Copysign(math.Inf(1), num)
	}

	return num / std
}

// Profile standardizes every key of observed against the same key across
// members. A key missing from a member counts as 0 for that member.
func Profile(observed map[string]float64, members []map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(observed))
	values := make([]float64, len(members))
	for key, obs := range observed {
		for i, m := range members {
			values[i] = m[key]
		}
		out[key] = Compute(obs, values)
	}

	return out
}

// Keys returns the keys of m in ascending order.
func Keys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
