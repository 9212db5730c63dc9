// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import (
	"fmt"
	"sort"
	"strings"
)

// Monomial is one term of a polynomial written out in expanded form: Coeff *
// prod(x_v^e for (v,e) in Exponents).
type Monomial struct {
	Coeff     Rational
	Exponents map[int]int
}

// ToMonomials expands p into its full sum-of-monomials form by walking every
// path of the DAG from root to a value node. Sharing inside the DAG can make
// this exponential in DagSize(p); it exists for display and testing on small
// examples, not as a substitute for the structural queries.
func (m *Manager) ToMonomials(p Poly) []Monomial {
	var out []Monomial
	m.collectMonomials(*p, map[int]int{}, &out)
	return out
}

func (m *Manager) collectMonomials(n int, exps map[int]int, out *[]Monomial) {
	if m.isValue(n) {
		if m.val(n).IsZero() {
			return
		}
		copied := make(map[int]int, len(exps))
		for v, e := range exps {
			if e != 0 {
				copied[v] = e
			}
		}
		*out = append(*out, Monomial{Coeff: m.val(n), Exponents: copied})
		return
	}
	v := m.level2var[m.level(n)]
	exps[v]++
	m.collectMonomials(m.hi(n), exps, out)
	exps[v]--
	m.collectMonomials(m.lo(n), exps, out)
}

// String renders p as a sum of monomials, variables named x0, x1, ... in
// descending level (the same order the diagram itself orients them), ties
// within a monomial broken by variable index.
func (m *Manager) String(p Poly) string {
	monomials := m.ToMonomials(p)
	if len(monomials) == 0 {
		return "0"
	}
	terms := make([]string, len(monomials))
	for i, mono := range monomials {
		vars := make([]int, 0, len(mono.Exponents))
		for v := range mono.Exponents {
			vars = append(vars, v)
		}
		sort.Slice(vars, func(i, j int) bool { return m.var2level[vars[i]] > m.var2level[vars[j]] })
		var b strings.Builder
		fmt.Fprintf(&b, "%s", mono.Coeff.String())
		for _, v := range vars {
			if e := mono.Exponents[v]; e == 1 {
				fmt.Fprintf(&b, "*x%d", v)
			} else {
				fmt.Fprintf(&b, "*x%d^%d", v, e)
			}
		}
		terms[i] = b.String()
	}
	return strings.Join(terms, " + ")
}

// Stats returns a short textual summary of pool occupancy and GC activity,
// in the same spirit as the teacher library's own PrintStats.
func (m *Manager) Stats() string {
	used := len(m.nodes) - m.freenum
	ratio := 100.0
	if len(m.nodes) > 0 {
		ratio = float64(m.freenum) / float64(len(m.nodes)) * 100
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Vars:       %d\n", len(m.var2pdd))
	fmt.Fprintf(&b, "Allocated:  %d\n", len(m.nodes))
	fmt.Fprintf(&b, "Produced:   %d\n", m.produced)
	fmt.Fprintf(&b, "Free:       %d  (%.3g %%)\n", m.freenum, ratio)
	fmt.Fprintf(&b, "Used:       %d  (%.3g %%)\n", used, 100.0-ratio)
	fmt.Fprintf(&b, "GC runs:    %d", len(m.gcHistory))
	return b.String()
}

// Dump logs the full node table at debug level, one line per live node, in
// the same spirit as the teacher library's logTable.
func (m *Manager) Dump() {
	for k, n := range m.nodes {
		if n.internal {
			continue
		}
		if n.level == 0 {
			m.log.Debug().Int("node", k).Str("value", m.values[n.valueIndex].String()).Int32("refcount", n.refcount).Msg("value node")
			continue
		}
		m.log.Debug().Int("node", k).Int("level", n.level).Int("lo", n.lo).Int("hi", n.hi).Int32("refcount", n.refcount).Msg("decision node")
	}
}

// WellFormed checks the structural invariants expected of every live node:
// decision nodes never have a zero hi branch (I2/I3, mkPoly always collapses
// that case), their lo branch sits at a strictly lower level (I2, a node
// never encodes its own variable in its constant part), and their hi branch
// never sits above their own level (I2, a node cannot depend on a variable
// ranked higher than the one it decides on).
func (m *Manager) WellFormed() error {
	for id := range m.nodes {
		nd := &m.nodes[id]
		if nd.internal || id < 2 {
			continue
		}
		if nd.level == 0 {
			continue
		}
		if m.isZero(nd.hi) {
			return &invariantError{msg: fmt.Sprintf("pdd: node %d has a zero hi branch", id)}
		}
		if m.level(nd.lo) >= nd.level {
			return &invariantError{msg: fmt.Sprintf("pdd: node %d's lo branch is not at a lower level", id)}
		}
		if m.level(nd.hi) > nd.level {
			return &invariantError{msg: fmt.Sprintf("pdd: node %d's hi branch is above its own level", id)}
		}
	}
	return nil
}
