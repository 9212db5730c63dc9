// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevel2VarReassignsOrder(t *testing.T) {
	m, err := New(3)
	assert.NoError(t, err)

	assert.NoError(t, m.SetLevel2Var([]int{2, 0, 1}))
	assert.Equal(t, 2, m.level2var[1])
	assert.Equal(t, 0, m.level2var[2])
	assert.Equal(t, 1, m.level2var[3])

	x2 := m.MkVar(2)
	assert.Equal(t, "1*x2", m.String(x2))
}

func TestSetLevel2VarRejectsBadPermutation(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	assert.Error(t, m.SetLevel2Var([]int{0, 0}))
	assert.Error(t, m.SetLevel2Var([]int{0}))
}

func TestSetLevel2VarRejectsOnceLiveNodesExist(t *testing.T) {
	m, err := New(2)
	assert.NoError(t, err)
	x, y := m.MkVar(0), m.MkVar(1)
	_ = m.Add(x, y)
	assert.Error(t, m.SetLevel2Var([]int{1, 0}))
}
