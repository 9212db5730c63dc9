// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

// nodeKey is the hash-cons key for decision nodes, adapted from the teacher's
// own (level, low, high) triplet. Unlike hudd.go, which hashes the triplet
// into a fixed byte array to use as a map key, we let the runtime hashmap
// work directly on a small comparable struct: simpler, and numvars/dag sizes
// in this domain never get large enough that the indirection hudd.go pays for
// matters here.
type nodeKey struct {
	level, lo, hi int
}

// allocNode pops a free slot from the node pool, triggering a garbage
// collection and, if that is not enough, a resize when the free list is
// empty. It never runs with a half-built node visible to the rest of the
// manager: callers must finish populating m.nodes[id] before doing anything
// that could itself allocate (which would just recurse into allocNode again,
// never race against this one, since a Manager is single-threaded).
func (m *Manager) allocNode() (int, error) {
	if m.freepos == 0 {
		if !m.config.disableGC {
			m.gc()
		}
		if (m.freenum*100)/len(m.nodes) <= m.config.minfreenodes {
			if err := m.noderesize(); err != nil {
				return 0, err
			}
		}
		if m.freepos == 0 {
			return 0, errMemory
		}
	}
	id := m.freepos
	m.freepos = m.nodes[id].hi
	m.freenum--
	m.produced++
	return id, nil
}

func (m *Manager) noderesize() error {
	oldsize := len(m.nodes)
	if m.config.maxnumnodes > 0 && oldsize >= m.config.maxnumnodes {
		return errMemory
	}
	newsize := oldsize * 2
	if newsize <= oldsize {
		newsize = oldsize + 16
	}
	if m.config.maxnumnodes > 0 && newsize > m.config.maxnumnodes {
		newsize = m.config.maxnumnodes
	}
	if newsize <= oldsize {
		return errMemory
	}

	grown := make([]pddNode, newsize)
	copy(grown, m.nodes)
	for n := oldsize; n < newsize; n++ {
		grown[n] = pddNode{level: -1, lo: -1, hi: n + 1, internal: true}
	}
	grown[newsize-1].hi = m.freepos
	m.nodes = grown
	m.freepos = oldsize
	m.freenum += newsize - oldsize
	m.log.Debug().Int("from", oldsize).Int("to", newsize).Msg("node pool grown")
	return nil
}

// insertDecision hash-conses a decision node x_level*hi+lo. Per I2 (no
// constant-zero edges) and I4 (reduced), callers must have already applied
// the structural short-circuits (hi == 0 collapses to lo, a decision never
// has a decision-free monomial it could simplify further); insertDecision
// itself only ever deduplicates.
func (m *Manager) insertDecision(level, lo, hi int) (int, error) {
	key := nodeKey{level, lo, hi}
	if id, ok := m.unique[key]; ok {
		return id, nil
	}
	id, err := m.allocNode()
	if err != nil {
		return 0, err
	}
	m.nodes[id] = pddNode{level: level, lo: lo, hi: hi, index: id}
	m.unique[key] = id
	return id, nil
}

// imkVal hash-conses a value node for r, reducing mod 2 first when the
// manager is configured for GF(2) coefficients. Values 0 and 1 always map to
// zeroID/oneID, the two constants set up once in New.
func (m *Manager) imkVal(r Rational) (int, error) {
	if m.config.mod2 {
		r = r.Mod2()
	}
	if r.IsZero() {
		return zeroID, nil
	}
	if r.IsOne() {
		return oneID, nil
	}
	key := r.String()
	if e, ok := m.mpqTable[key]; ok {
		m.freezeValue = e.valueIndex
		return e.node, nil
	}
	id, err := m.allocNode()
	if err != nil {
		return 0, err
	}
	vidx := m.allocValue(r)
	m.nodes[id] = pddNode{level: 0, lo: -1, hi: -1, valueIndex: vidx, index: id}
	m.mpqTable[key] = mpqEntry{valueIndex: vidx, node: id}
	m.freezeValue = vidx
	return id, nil
}

// allocValue stores r in the value pool, reusing a free slot if one is
// available, and returns its index.
func (m *Manager) allocValue(r Rational) int {
	if n := len(m.freeValues); n > 0 {
		idx := m.freeValues[n-1]
		m.freeValues = m.freeValues[:n-1]
		m.values[idx] = r
		return idx
	}
	m.values = append(m.values, r)
	return len(m.values) - 1
}
