// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

// pddNode is a single node record, per §3 "PDD node". Decision nodes have
// level > 0 and denote x_level*hi + lo. Value nodes have level == 0 and
// index into the manager's value pool through valueIndex; a value node has
// no children, and its lo and hi fields are both -1.
//
// Free slots double as a singly-linked free list: lo is unused (kept at -1
// as a marker) and hi holds the index of the next free slot, 0 if it is the
// last one. internal mirrors that a slot is currently free.
type pddNode struct {
	level      int
	lo, hi     int
	valueIndex int   // meaningful only when level == 0
	refcount   int32 // saturating at max_rc
	index      int   // self-id, for cross-checks
	internal   bool  // true while the slot sits in the free list
	mark       uint32
}

// isValue reports whether node n (by id) is a value node.
func (m *Manager) isValue(n int) bool {
	return m.nodes[n].level == 0
}

func (m *Manager) isZero(n int) bool {
	return n == zeroID
}

func (m *Manager) isOne(n int) bool {
	return n == oneID
}

func (m *Manager) level(n int) int {
	return m.nodes[n].level
}

func (m *Manager) lo(n int) int {
	return m.nodes[n].lo
}

func (m *Manager) hi(n int) int {
	return m.nodes[n].hi
}

func (m *Manager) val(n int) Rational {
	return m.values[m.nodes[n].valueIndex]
}

// ************************************************************
// Reference counting (§4.4). Counters saturate at max_rc and pinned nodes
// (built with refcount == max_rc) never participate.

func (m *Manager) incRef(n int) {
	nd := &m.nodes[n]
	if nd.refcount < max_rc {
		nd.refcount++
	}
}

func (m *Manager) decRef(n int) {
	nd := &m.nodes[n]
	if nd.refcount < max_rc && nd.refcount > 0 {
		nd.refcount--
	}
}

// ************************************************************
// Mark epochs (§4.5). A single generation counter lets every traversal
// "clear" the mark vector in O(1) by simply moving to the next epoch,
// instead of resetting every node's mark field.

func (m *Manager) initMark() {
	m.markLevel++
	if m.markLevel == 0 {
		// wrapped around: the stale marks could alias the new epoch 0, so we
		// physically clear the marks once and move past epoch 0 again.
		for i := range m.nodes {
			m.nodes[i].mark = 0
		}
		m.markLevel++
	}
}

func (m *Manager) setMark(n int) {
	m.nodes[n].mark = m.markLevel
}

func (m *Manager) isMarked(n int) bool {
	return m.nodes[n].mark == m.markLevel
}
