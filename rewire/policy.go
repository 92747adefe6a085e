// SPDX-License-Identifier: MIT
// File: policy.go
// Role: Enumerated categorization/legality strategies selected at construction.
// Policies:
//   - Standard:       unidirectional vs bidirectional; self-loops rejected.
//   - WithSelfLoops:  Standard with self-loops folded into unidirectional.
//   - DomainSpecific: substrate/product edges of pivot vertices split by
//                     reversibility, all single-arity.

package rewire

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/motifnull/core"
)

// PolicyKind identifies a built-in policy.
type PolicyKind int

const (
	KindStandard PolicyKind = iota
	KindSelfLoops
	KindDomain
)

func (k PolicyKind) String() string {
	switch k {
	case KindSelfLoops:
		return "selfloops"
	case KindDomain:
		return "domain"
	default:
		return "standard"
	}
}

// Policy decides how edges are grouped and which switches are legal.
// The zero value is Standard.
type Policy struct {
	kind   PolicyKind
	domain DomainConfig
}

// Standard returns the default policy.
func Standard() Policy { return Policy{kind: KindStandard} }

// WithSelfLoops returns Standard with self-loops admitted as unidirectional edges.
func WithSelfLoops() Policy { return Policy{kind: KindSelfLoops} }

// DomainSpecific returns the pivot-based policy for bipartite process graphs
// such as metabolic networks, where pivots are reactions.
func DomainSpecific(cfg DomainConfig) Policy { return Policy{kind: KindDomain, domain: cfg} }

// Kind reports which built-in policy p is.
func (p Policy) Kind() PolicyKind { return p.kind }

// Domain returns the configuration of a DomainSpecific policy.
func (p Policy) Domain() DomainConfig { return p.domain }

func (p Policy) String() string { return p.kind.String() }

// DomainConfig lists pivot vertices and the subset of them that are reversible.
type DomainConfig struct {
	Pivots     []int
	Reversible []int
}

// validate checks every id is a vertex of g, pivots are unique and every
// reversible id is a pivot.
func (c DomainConfig) validate(g *core.Graph) error {
	if len(c.Pivots) == 0 {
		return fmt.Errorf("no pivots: %w", ErrInvalidDomainConfig)
	}
	seen := make(map[int]bool, len(c.Pivots))
	for _, p := range c.Pivots {
		if !g.HasVertex(p) {
			return fmt.Errorf("pivot %d not in graph: %w", p, ErrInvalidDomainConfig)
		}
		if seen[p] {
			return fmt.Errorf("pivot %d listed twice: %w", p, ErrInvalidDomainConfig)
		}
		seen[p] = true
	}
	for _, r := range c.Reversible {
		if !seen[r] {
			return fmt.Errorf("reversible %d is not a pivot: %w", r, ErrInvalidDomainConfig)
		}
	}

	return nil
}

// domainFile is the YAML form of DomainConfig, keyed by vertex labels.
type domainFile struct {
	Pivots     []string `yaml:"pivots" validate:"required,min=1,dive,required"`
	Reversible []string `yaml:"reversible" validate:"omitempty,dive,required"`
}

var validate = validator.New()

// LoadDomainConfig reads a YAML document of the form
//
//	pivots: [R1, R2]
//	reversible: [R2]
//
// and resolves the names through labels.
func LoadDomainConfig(r io.Reader, labels *core.Labels) (DomainConfig, error) {
	var f domainFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return DomainConfig{}, fmt.Errorf("LoadDomainConfig: decode: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return DomainConfig{}, fmt.Errorf("LoadDomainConfig: %v: %w", err, ErrInvalidDomainConfig)
	}

	resolve := func(names []string) ([]int, error) {
		ids := make([]int, 0, len(names))
		for _, name := range names {
			id, ok := labels.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("LoadDomainConfig: unknown vertex %q: %w", name, ErrInvalidDomainConfig)
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	pivots, err := resolve(f.Pivots)
	if err != nil {
		return DomainConfig{}, err
	}
	reversible, err := resolve(f.Reversible)
	if err != nil {
		return DomainConfig{}, err
	}

	return DomainConfig{Pivots: pivots, Reversible: reversible}, nil
}
