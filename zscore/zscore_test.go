// SPDX-License-Identifier: MIT

package zscore_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/motifnull/zscore"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		observed float64
		ensemble []float64
		check    func(t *testing.T, z float64)
	}{
		{"equal to mean", 5, []float64{5, 5, 5}, func(t *testing.T, z float64) { assert.Zero(t, z) }},
		{"equal to mean with variance", 2, []float64{1, 2, 3}, func(t *testing.T, z float64) { assert.Zero(t, z) }},
		{"above", 5, []float64{1, 2, 3}, func(t *testing.T, z float64) {
			assert.False(t, math.IsInf(z, 0))
			assert.InDelta(t, 3/math.Sqrt(2.0/3.0), z, 1e-12)
		}},
		{"below", -1, []float64{1, 2, 3}, func(t *testing.T, z float64) { assert.Less(t, z, 0.0) }},
		{"zero variance above", 5, []float64{2, 2, 2}, func(t *testing.T, z float64) { assert.True(t, math.IsInf(z, 1)) }},
		{"zero variance below", 1, []float64{2, 2, 2}, func(t *testing.T, z float64) { assert.True(t, math.IsInf(z, -1)) }},
		{"empty", 5, nil, func(t *testing.T, z float64) { assert.True(t, zscore.IsUndefined(z)) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, zscore.Compute(tc.observed, tc.ensemble))
		})
	}
}

func TestProfile(t *testing.T) {
	observed := map[string]float64{"030C": 4, "030T": 1}
	members := []map[string]float64{
		{"030C": 1, "030T": 1},
		{"030C": 3},
	}
	z := zscore.Profile(observed, members)
	// 030C: mean 2, std 1; 030T: mean 0.5, std 0.5.
	assert.InDelta(t, 2, z["030C"], 1e-12)
	assert.InDelta(t, 1, z["030T"], 1e-12)
	assert.Equal(t, []string{"030C", "030T"}, zscore.Keys(z))

	empty := zscore.Profile(observed, nil)
	assert.True(t, zscore.IsUndefined(empty["030C"]))
}
