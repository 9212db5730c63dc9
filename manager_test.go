// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPinsConstantsAndVariables(t *testing.T) {
	m, err := New(3)
	assert.NoError(t, err)
	assert.Equal(t, 3, m.NumVars())

	zero, one := m.Zero(), m.One()
	assert.True(t, m.val(*zero).IsZero())
	assert.True(t, m.val(*one).IsOne())

	for v := 0; v < 3; v++ {
		x := m.MkVar(v)
		assert.Equal(t, 1, m.Degree(x))
		assert.Equal(t, []int{v}, m.FreeVars(x))
	}
}

func TestNewRejectsNegativeVarnum(t *testing.T) {
	assert.PanicsWithValue(t, &invariantError{msg: "pdd: negative number of variables (-1)"}, func() {
		New(-1)
	})
}

func TestMkValCollapsesToConstants(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)

	zero := m.MkVal(NewRational(0))
	assert.Equal(t, *m.Zero(), *zero)

	one := m.MkVal(NewRational(1))
	assert.Equal(t, *m.One(), *one)

	half := m.MkVal(NewRational(1, 2))
	assert.Equal(t, "1/2", m.String(half))
}

func TestAddRefDelRef(t *testing.T) {
	m, err := New(1)
	assert.NoError(t, err)
	// x0 + 1 rather than x0 itself: variable nodes are pinned at max_rc and
	// never change their refcount.
	x := m.Add(m.MkVar(0), m.One())
	before := m.nodes[*x].refcount
	m.AddRef(x)
	assert.Equal(t, before+1, m.nodes[*x].refcount)
	m.DelRef(x)
	assert.Equal(t, before, m.nodes[*x].refcount)
}

func TestWellFormedOnFreshManager(t *testing.T) {
	m, err := New(4)
	assert.NoError(t, err)
	x0, x1 := m.MkVar(0), m.MkVar(1)
	p := m.Add(m.Mul(x0, x1), m.One())
	assert.NoError(t, m.WellFormed())
	_ = p
}

func TestStatsReportsVarCount(t *testing.T) {
	m, err := New(2, Nodesize(8))
	assert.NoError(t, err)
	stats := m.Stats()
	assert.Contains(t, stats, "Vars:       2")
}
