// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import "fmt"

// SetLevel2Var reassigns variable levels according to perm, a permutation of
// [0, NumVars) giving the variable placed at each level, from the bottommost
// level (index 0 of perm, level 1) up to the topmost (index NumVars-1, level
// NumVars). It only
// succeeds on a manager that has not yet built any polynomial beyond the
// pinned variables and constants: reordering an established DAG would need
// to rebuild every live node's path from scratch, which is the dynamic
// reordering problem full BDD packages solve with a sifting algorithm, not
// a cheap map update. Callers that want a different variable order should
// call SetLevel2Var right after New, mirroring the teacher library's own
// SetVarnum, which is likewise only meant to be called before a manager
// accumulates live nodes.
func (m *Manager) SetLevel2Var(perm []int) error {
	n := len(m.var2pdd)
	if len(perm) != n {
		return &invariantError{msg: fmt.Sprintf("pdd: SetLevel2Var: permutation has length %d, want %d", len(perm), n)}
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return &invariantError{msg: "pdd: SetLevel2Var: argument is not a permutation of the variable set"}
		}
		seen[v] = true
	}

	pinned := make(map[int]bool, n)
	for _, id := range m.var2pdd {
		pinned[id] = true
	}
	for id := range m.nodes {
		nd := &m.nodes[id]
		if nd.internal || id < 2 || pinned[id] {
			continue
		}
		if nd.level > 0 {
			return &invariantError{msg: "pdd: SetLevel2Var: manager already has live polynomials built on the current order"}
		}
	}

	for _, id := range m.var2pdd {
		nd := &m.nodes[id]
		delete(m.unique, nodeKey{nd.level, nd.lo, nd.hi})
		*nd = pddNode{level: -1, lo: -1, hi: m.freepos, internal: true}
		m.freepos = id
		m.freenum++
	}

	m.var2level = make([]int, n)
	m.level2var = make([]int, n+1)
	for pos, v := range perm {
		level := pos + 1
		m.var2level[v] = level
		m.level2var[level] = v
	}

	for v := 0; v < n; v++ {
		id, err := m.insertDecision(m.var2level[v], zeroID, oneID)
		if err != nil {
			return err
		}
		m.nodes[id].refcount = max_rc
		m.var2pdd[v] = id
	}

	m.log.Debug().Ints("perm", perm).Msg("level order reassigned")
	return nil
}
