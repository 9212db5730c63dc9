// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddCommutesAndCancels(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)

	sum1 := m.Add(x, y)
	sum2 := m.Add(y, x)
	assert.Equal(t, *sum1, *sum2)

	zero := m.Add(x, m.Minus(x))
	assert.Equal(t, *m.Zero(), *zero)
}

func TestAddWithZeroIsIdentity(t *testing.T) {
	m, err := New(1)
	assert.NoError(t, err)
	x := m.MkVar(0)
	assert.Equal(t, *x, *m.Add(x, m.Zero()))
}

func TestMulDistributesOverAdd(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	c := m.MkVal(NewRational(3))

	left := m.Mul(c, m.Add(x, y))
	right := m.Add(m.Mul(c, x), m.Mul(c, y))
	assert.Equal(t, m.String(left), m.String(right))
}

func TestMulByOneAndZero(t *testing.T) {
	m, err := New(1)
	assert.NoError(t, err)
	x := m.MkVar(0)
	assert.Equal(t, *x, *m.Mul(x, m.One()))
	assert.Equal(t, *m.Zero(), *m.Mul(x, m.Zero()))
}

func TestMulSameVariableBuildsSquare(t *testing.T) {
	m, err := New(1)
	assert.NoError(t, err)
	x := m.MkVar(0)
	sq := m.Mul(x, x)
	assert.Equal(t, 2, m.Degree(sq))
	assert.Equal(t, "1*x0^2", m.String(sq))
}

func TestMod2MulFoldsSquareBackToLinear(t *testing.T) {
	m, err := New(1, Mod2Semantics())
	assert.NoError(t, err)
	x := m.MkVar(0)
	sq := m.Mul(x, x)
	// x*x == x under GF(2)/Boolean convention
	assert.Equal(t, *x, *sq)
}

func TestMod2MinusIsIdentity(t *testing.T) {
	m, err := New(1, Mod2Semantics())
	assert.NoError(t, err)
	x := m.MkVar(0)
	assert.Equal(t, *x, *m.Minus(x))
}

func TestSubIsAddOfMinus(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	assert.Equal(t, *m.Add(x, m.Minus(y)), *m.Sub(x, y))
}

func TestAddNAndMulN(t *testing.T) {
	m, err := New(3)
	assert.NoError(t, err)
	x, y, z := m.MkVar(0), m.MkVar(1), m.MkVar(2)

	sum := m.AddN(x, y, z)
	assert.Equal(t, *m.Add(x, m.Add(y, z)), *sum)

	prod := m.MulN(x, y, z)
	assert.Equal(t, *m.Mul(x, m.Mul(y, z)), *prod)

	assert.Equal(t, *m.Zero(), *m.AddN())
	assert.Equal(t, *m.One(), *m.MulN())
}

func TestGenericMultiplicationExpandsCorrectly(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	one := m.MkVal(NewRational(1))

	// (x+1)*(y+1) == xy + x + y + 1
	left := m.Mul(m.Add(x, one), m.Add(y, one))
	monos := m.ToMonomials(left)
	assert.Len(t, monos, 4)
}
