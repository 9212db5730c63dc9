// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingTermOfMonomial(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	c := m.MkVal(NewRational(5))

	p := m.Mul(c, m.Mul(x, m.Mul(x, y))) // 5*x0^2*x1
	lt := m.Lt(p)
	assert.Equal(t, "5", lt.Coeff.String())
	assert.Equal(t, 2, lt.Exponents[0])
	assert.Equal(t, 1, lt.Exponents[1])
}

func TestLmDividesHigherLevelVariable(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	p := m.Mul(x, x) // leading term x0^2
	assert.True(t, m.LmDivides(x, p))
	assert.False(t, m.LmDivides(p, x))
	assert.False(t, m.LmDivides(x, y))
}

func TestLtQuotient(t *testing.T) {
	m, err := New(1)
	assert.NoError(t, err)
	x := m.MkVar(0)
	sq := m.Mul(x, x)
	q := m.LtQuotient(x, sq)
	assert.Equal(t, "-1*x0", m.String(q))
}

func TestCommonFactors(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	six := m.MkVal(NewRational(6))
	four := m.MkVal(NewRational(4))

	a := m.Mul(six, m.Mul(x, x)) // 6*x0^2
	b := m.Mul(four, x)         // 4*x0
	cf, ok := m.CommonFactors(a, b)
	assert.True(t, ok)
	assert.Equal(t, map[int]int{}, cf.PExp)
	assert.Equal(t, map[int]int{0: 1}, cf.QExp)
	assert.Equal(t, "3", cf.PCoeff.String())
	assert.Equal(t, "2", cf.QCoeff.String())
	_ = y
}

func TestCommonFactorsNoSharedVariable(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	_, ok := m.CommonFactors(x, y)
	assert.False(t, ok)
}

func TestReduceCancelsLeadingTerm(t *testing.T) {
	m, err := New(1)
	assert.NoError(t, err)
	x := m.MkVar(0)
	sq := m.Mul(x, x)
	p := m.Add(sq, x) // x0^2 + x0
	r := m.Reduce(p, x)
	assert.Equal(t, *m.Zero(), *r)
}

func TestReduceIsNoopWhenLeadingMonomialDoesNotDivide(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	assert.Equal(t, *x, *m.Reduce(x, y))
}

func TestTrySpolyOfAPolynomialWithItselfIsZero(t *testing.T) {
	m, err := New(1)
	assert.NoError(t, err)
	x := m.MkVar(0)
	s, ok := m.TrySpoly(x, x)
	assert.True(t, ok)
	assert.Equal(t, *m.Zero(), *s)
}

func TestTrySpolyDegenerateWhenNoSharedVariable(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	_, ok := m.TrySpoly(x, y)
	assert.False(t, ok)
}

func TestTrySpolyCancelsLeadingTerms(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	p := m.Add(m.Mul(x, x), y) // x0^2 + x1
	q := m.Add(m.Mul(x, y), m.One())

	// x0*p - q: the shared leading term x1*x0 cancels, leaving x0^3 - 1.
	s, ok := m.TrySpoly(p, q)
	assert.True(t, ok)
	assert.Equal(t, "1*x0^3 + -1", m.String(s))
}

func TestTrySpolyAsymmetricCrossCoefficients(t *testing.T) {
	m, err := New(3)
	assert.NoError(t, err)
	v0, v1, v2 := m.MkVar(0), m.MkVar(1), m.MkVar(2)

	a := m.Add(m.Mul(v2, v1), v0)      // v2*v1 + v0
	b := m.Add(m.Mul(v2, v0), m.One()) // v2*v0 + 1

	s, ok := m.TrySpoly(a, b)
	assert.True(t, ok)
	assert.Equal(t, "-1*x1 + 1*x0^2", m.String(s))
	assert.NotContains(t, m.FreeVars(s), 2)
}

func TestDegreeDagSizeTreeSize(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	p := m.Add(m.Mul(x, x), m.Mul(x, x)) // shares the x0^2 subDAG on both sides
	assert.Equal(t, 2, m.Degree(p))
	assert.True(t, m.DagSize(p) <= m.TreeSize(p))
	_ = y
}

func TestIsLinear(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	assert.True(t, m.IsLinear(m.Add(x, y)))
	assert.False(t, m.IsLinear(m.Mul(x, y)))
}

func TestFreeVarsSorted(t *testing.T) {
	m, err := New(3)
	assert.NoError(t, err)
	x, z := m.MkVar(0), m.MkVar(2)
	p := m.Add(x, z)
	assert.Equal(t, []int{0, 2}, m.FreeVars(p))
}
