// SPDX-License-Identifier: MIT
// File: types.go
// Role: Triad classes, the 6-bit tricode and the fixed tricode→class table.

package census

import "fmt"

// Class is one of the sixteen directed triad isomorphism classes.
type Class uint8

// The sixteen classes in MAN order.
const (
	Triad003 Class = iota
	Triad012
	Triad102
	Triad021D
	Triad021U
	Triad021C
	Triad111D
	Triad111U
	Triad030T
	Triad030C
	Triad201
	Triad120D
	Triad120U
	Triad120C
	Triad210
	Triad300
)

// NumClasses is the number of triad classes.
const NumClasses = 16

var classNames = [NumClasses]string{
	"003", "012", "102", "021D", "021U", "021C", "111D", "111U",
	"030T", "030C", "201", "120D", "120U", "120C", "210", "300",
}

// String returns the MAN name of c.
func (c Class) String() string {
	if int(c) >= NumClasses {
		return fmt.Sprintf("Class(%d)", uint8(c))
	}

	return classNames[c]
}

// Connected reports whether every triple of class c is weakly connected.
func (c Class) Connected() bool { return c > Triad102 && int(c) < NumClasses }

// Number returns the conventional motif number 1..13 of a connected class
// and 0 for "003", "012" and "102".
func (c Class) Number() int {
	for i, k := range ConnectedClasses {
		if k == c {
			return i + 1
		}
	}

	return 0
}

// ParseClass returns the class with MAN name s.
func ParseClass(s string) (Class, error) {
	for i, name := range classNames {
		if name == s {
			return Class(i), nil
		}
	}

	return 0, fmt.Errorf("ParseClass(%q): %w", s, ErrUnknownClass)
}

// AllClasses lists the sixteen classes in MAN order.
var AllClasses = [NumClasses]Class{
	Triad003, Triad012, Triad102, Triad021D, Triad021U, Triad021C, Triad111D, Triad111U,
	Triad030T, Triad030C, Triad201, Triad120D, Triad120U, Triad120C, Triad210, Triad300,
}

// ConnectedClasses lists the thirteen connected classes in motif-number order,
// so ConnectedClasses[k-1].Number() == k.
var ConnectedClasses = [13]Class{
	Triad021D, Triad021U, Triad021C, Triad111D, Triad111U, Triad201, Triad030T,
	Triad030C, Triad120D, Triad120U, Triad120C, Triad210, Triad300,
}

// Tricode encodes the six possible arcs among an ordered triple (v, u, w):
// v→u=1, u→v=2, v→w=4, w→v=8, u→w=16, w→u=32.
type Tricode uint8

const (
	bitVU Tricode = 1 << iota
	bitUV
	bitVW
	bitWV
	bitUW
	bitWU
)

// tricodeClass maps every 6-bit tricode to its class. The mapping is
// invariant under permutations of (v, u, w).
var tricodeClass = [64]Class{
	0, 1, 1, 2, 1, 3, 5, 7, 1, 5, 4, 6, 2, 7, 6, 10,
	1, 5, 3, 7, 4, 8, 8, 12, 5, 9, 8, 13, 6, 13, 11, 14,
	1, 4, 5, 6, 5, 8, 9, 13, 3, 8, 8, 11, 7, 12, 13, 14,
	2, 6, 7, 10, 6, 11, 13, 14, 7, 13, 12, 14, 10, 14, 14, 15,
}

// Class returns the isomorphism class encoded by t.
func (t Tricode) Class() Class { return tricodeClass[t&63] }

// Triple is an ordered node triple (v, u, w) as visited by the census.
type Triple [3]int
