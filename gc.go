// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

// gcpoint is a snapshot of pool occupancy taken at each garbage collection,
// kept so Stats can report how a computation's memory footprint evolved.
type gcpoint struct {
	nodes     int
	freenodes int
	produced  int
}

// gc runs a mark-and-sweep collection jointly over the node pool, the value
// pool and the operator cache. Roots are the nodes on the refstack (results
// under construction somewhere up the Go call stack) together with every
// node carrying a positive reference count (externally held Poly handles,
// plus the pinned constants and variables at max_rc). Reclaimed node slots
// rejoin the free list; reclaimed value slots rejoin freeValues, except
// freezeValue, the single most-recently-materialized rational, whose value
// node, slot and value-table entry are all kept even when unreferenced to
// avoid thrashing the value table mid-operation;
// completed operator-cache entries are dropped since they might reference a
// node that did not survive.
func (m *Manager) gc() {
	m.gcHistory = append(m.gcHistory, gcpoint{
		nodes:     len(m.nodes),
		freenodes: m.freenum,
		produced:  m.produced,
	})
	m.log.Debug().Int("nodes", len(m.nodes)).Int("free", m.freenum).Msg("gc start")

	m.initMark()
	for _, r := range m.refstack {
		m.markrec(r)
	}
	for k := range m.nodes {
		if m.nodes[k].internal {
			continue
		}
		if m.nodes[k].refcount > 0 {
			m.markrec(k)
		}
	}

	usedValues := make(map[int]bool)
	for k := range m.nodes {
		if !m.nodes[k].internal && m.isMarked(k) && m.nodes[k].level == 0 {
			usedValues[m.nodes[k].valueIndex] = true
		}
	}

	m.unique = make(map[nodeKey]int, len(m.nodes))
	m.mpqTable = make(map[string]mpqEntry, len(m.values))
	m.freepos = 0
	m.freenum = 0
	for n := len(m.nodes) - 1; n > 1; n-- {
		nd := &m.nodes[n]
		frozen := !nd.internal && nd.level == 0 && nd.valueIndex == m.freezeValue
		if !nd.internal && (m.isMarked(n) || frozen) {
			if nd.level > 0 {
				m.unique[nodeKey{nd.level, nd.lo, nd.hi}] = n
			} else {
				m.mpqTable[m.values[nd.valueIndex].String()] = mpqEntry{valueIndex: nd.valueIndex, node: n}
			}
			continue
		}
		*nd = pddNode{level: -1, lo: -1, hi: m.freepos, internal: true}
		m.freepos = n
		m.freenum++
	}

	m.freeValues = m.freeValues[:0]
	for idx := range m.values {
		if idx < 2 || idx == m.freezeValue || usedValues[idx] {
			continue
		}
		m.freeValues = append(m.freeValues, idx)
	}

	m.cacheSweep()
	m.log.Debug().Int("free", m.freenum).Msg("gc end")
}

// markrec marks n and, recursively, every node reachable from it. Value
// nodes have no children (lo == hi == -1) so recursion bottoms out there.
func (m *Manager) markrec(n int) {
	if m.nodes[n].internal || m.isMarked(n) {
		return
	}
	m.setMark(n)
	if m.nodes[n].level == 0 {
		return
	}
	m.markrec(m.nodes[n].lo)
	m.markrec(m.nodes[n].hi)
}
