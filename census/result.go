// SPDX-License-Identifier: MIT
// File: result.go
// Role: Census result container and convenience views.

package census

// Result is the outcome of Compute.
//
// Counts holds one entry per reported class (13 or 16). Triples is non-nil
// only with WithRecord and holds the connected classes only; the dyadic
// classes are never enumerated.
type Result struct {
	N            int
	Disconnected bool
	Counts       map[Class]int64
	Triples      map[Class][]Triple
}

func newResult(n int, cfg config) *Result {
	r := &Result{N: n, Disconnected: cfg.disconnected, Counts: make(map[Class]int64, NumClasses)}
	for _, c := range ConnectedClasses {
		r.Counts[c] = 0
	}
	if cfg.disconnected {
		r.Counts[Triad003] = 0
		r.Counts[Triad012] = 0
		r.Counts[Triad102] = 0
	}
	if cfg.record {
		r.Triples = make(map[Class][]Triple, len(ConnectedClasses))
		for _, c := range ConnectedClasses {
			r.Triples[c] = nil
		}
	}

	return r
}

func (r *Result) add(c Class, t Triple) {
	r.Counts[c]++
	if r.Triples != nil {
		r.Triples[c] = append(r.Triples[c], t)
	}
}

// Count returns the count of class c, 0 when c was not reported.
func (r *Result) Count(c Class) int64 { return r.Counts[c] }

// Total returns the sum over all reported classes.
func (r *Result) Total() int64 {
	var sum int64
	for _, k := range r.Counts {
		sum += k
	}

	return sum
}

// Vector returns the thirteen connected counts in motif-number order.
func (r *Result) Vector() []float64 {
	out := make([]float64, len(ConnectedClasses))
	for i, c := range ConnectedClasses {
		out[i] = float64(r.Counts[c])
	}

	return out
}

// Named returns the counts keyed by MAN name.
func (r *Result) Named() map[string]float64 {
	out := make(map[string]float64, len(r.Counts))
	for c, k := range r.Counts {
		out[c.String()] = float64(k)
	}

	return out
}
