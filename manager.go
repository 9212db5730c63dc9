// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import (
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// zeroID and oneID are the fixed addresses of the constant value nodes 0 and
// 1. They are never placed in the unique table and never collected.
const (
	zeroID int = 0
	oneID  int = 1
)

// Manager owns every node, value and cache of a single PDD universe. All of
// its methods expect to run from a single goroutine at a time: like the
// buddy/hudd tables it adapts, a Manager keeps no internal lock and relies on
// its caller for mutual exclusion.
type Manager struct {
	id  uuid.UUID
	log zerolog.Logger

	config *configs

	nodes    []pddNode
	unique   map[nodeKey]int // hash-cons table for decision nodes only
	freepos  int
	freenum  int
	produced int // total number of nodes ever allocated

	values      []Rational
	freeValues  []int
	mpqTable    map[string]mpqEntry // canonical-string -> (value slot, node id)
	freezeValue int                 // most recently materialized value slot, held back from gc's sweep

	refstack      []int // protects in-flight results from GC, see pushref/popref
	nodefinalizer interface{}

	markLevel uint32 // current mark epoch, see initMark/setMark/isMarked

	var2level []int
	level2var []int
	var2pdd   []int // pinned decision node for each variable, x_i = level_i*1+0

	opcache map[opKey]*opEntry

	gcHistory []gcpoint
}

type mpqEntry struct {
	valueIndex int
	node       int
}

// New builds a Manager with numvars variables, numbered 0..numvars-1 in
// creation order and initially given levels in the same order (variable v sits
// at level v+1, so level 1 is the bottommost non-constant level and level
// numvars the topmost; level 0 is reserved for value nodes).
func New(numvars int, opts ...Option) (*Manager, error) {
	assertf(numvars >= 0, "pdd: negative number of variables (%d)", numvars)
	cfg := makeconfigs(numvars)
	for _, o := range opts {
		o(cfg)
	}

	m := &Manager{
		id:     uuid.New(),
		config: cfg,
	}
	m.log = pkgLogger.With().Str("manager", m.id.String()).Logger()

	m.nodes = make([]pddNode, cfg.nodesize)
	for k := range m.nodes {
		m.nodes[k] = pddNode{level: -1, lo: -1, hi: k + 1, internal: true}
	}
	m.nodes[cfg.nodesize-1].hi = 0
	m.freepos = 2
	m.freenum = cfg.nodesize - 2

	m.unique = make(map[nodeKey]int, cfg.nodesize)
	m.mpqTable = make(map[string]mpqEntry)
	m.opcache = make(map[opKey]*opEntry)
	m.freezeValue = -1

	// zero and one are pinned ahead of everything else and never go through
	// insertDecision/imkVal: they must exist before any other allocation can
	// reference them.
	m.nodes[zeroID] = pddNode{level: 0, lo: -1, hi: -1, valueIndex: 0, refcount: max_rc, index: zeroID}
	m.nodes[oneID] = pddNode{level: 0, lo: -1, hi: -1, valueIndex: 1, refcount: max_rc, index: oneID}
	m.values = []Rational{zeroRational(), oneRational()}
	m.mpqTable[zeroRational().String()] = mpqEntry{valueIndex: 0, node: zeroID}
	m.mpqTable[oneRational().String()] = mpqEntry{valueIndex: 1, node: oneID}

	m.refstack = make([]int, 0, 2*numvars+4)
	m.nodefinalizer = func(n *int) {
		if *n >= 0 && *n < len(m.nodes) {
			m.decRef(*n)
		}
	}

	m.var2level = make([]int, numvars)
	m.level2var = make([]int, numvars+1)
	m.var2pdd = make([]int, numvars)
	for v := 0; v < numvars; v++ {
		level := v + 1 // level(v_i) == i+1: levels run bottom-up by creation order, level 0 reserved for value nodes
		m.var2level[v] = level
		m.level2var[level] = v
		id, err := m.insertDecision(level, zeroID, oneID)
		if err != nil {
			return nil, err
		}
		m.nodes[id].refcount = max_rc
		m.var2pdd[v] = id
	}

	m.log.Debug().Int("numvars", numvars).Msg("manager created")
	return m, nil
}

// Poly is an owning handle to a node: the sole user-visible object returned
// by Manager's public API. Internally, algorithms pass the underlying node id
// (an int) directly.
type Poly *int

// retnode wraps node id n into a Poly, bumping its reference count and
// attaching a finalizer that drops it again once the handle becomes
// unreachable. Mirrors the teacher's own retnode.
func (m *Manager) retnode(n int) Poly {
	assertf(n >= 0 && n < len(m.nodes), "pdd: retnode(%d) out of range", n)
	if n == zeroID || n == oneID {
		x := n
		return &x
	}
	x := n
	if m.nodes[n].refcount < max_rc {
		m.nodes[n].refcount++
		runtime.SetFinalizer(&x, m.nodefinalizer)
	}
	return &x
}

// AddRef increases the reference count of a handle's node and returns it
// unchanged, so calls can be chained.
func (m *Manager) AddRef(p Poly) Poly {
	m.incRef(*p)
	return p
}

// DelRef decreases the reference count of a handle's node and returns it
// unchanged, so calls can be chained. Use it to release a handle manually
// ahead of garbage collection, without waiting on the Go runtime's finalizer.
func (m *Manager) DelRef(p Poly) Poly {
	m.decRef(*p)
	return p
}

// Zero returns the constant polynomial 0.
func (m *Manager) Zero() Poly { return m.retnode(zeroID) }

// One returns the constant polynomial 1.
func (m *Manager) One() Poly { return m.retnode(oneID) }

// MkVal returns the constant polynomial whose value is r.
func (m *Manager) MkVal(r Rational) Poly {
	id, err := m.imkVal(r)
	assertf(err == nil, "pdd: MkVal: %v", err)
	return m.retnode(id)
}

// MkVar returns the polynomial x_v, for v in [0..numvars).
func (m *Manager) MkVar(v int) Poly {
	assertf(v >= 0 && v < len(m.var2pdd), "pdd: MkVar: variable %d out of range", v)
	return m.retnode(m.var2pdd[v])
}

// NumVars returns the number of variables the manager was created with.
func (m *Manager) NumVars() int { return len(m.var2pdd) }

// ************************************************************
// refstack: internal GC roots for results under construction.

func (m *Manager) initref() {
	m.refstack = m.refstack[:0]
}

func (m *Manager) pushref(n int) int {
	m.refstack = append(m.refstack, n)
	return n
}

func (m *Manager) popref(a int) {
	m.refstack = m.refstack[:len(m.refstack)-a]
}

func (m *Manager) readref(a int) int {
	return m.refstack[len(m.refstack)-a]
}
