// SPDX-License-Identifier: MIT
package census

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoose3(t *testing.T) {
	tests := []struct {
		n    int
		want int64
		ok   bool
	}{
		{0, 0, true},
		{2, 0, true},
		{3, 1, true},
		{10, 120, true},
		{2_100_000, 1_543_497_795_000_700_000, true},
		{3_810_779, 9_223_371_416_043_870_029, true},
		{3_810_780, 0, false},
	}
	for _, tc := range tests {
		got, ok := choose3(tc.n)
		assert.Equal(t, tc.ok, ok, "n=%d", tc.n)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
	}
}
