// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

// order canonicalizes the pair (p, q) for a commutative operation so the
// operator cache never holds both (p, q, op) and (q, p, op): the operand at
// the higher level (closer to the root) always comes first, with node id as
// a tie-break between same-level operands.
func (m *Manager) order(p, q int) (int, int) {
	lp, lq := m.level(p), m.level(q)
	if lp < lq || (lp == lq && p > q) {
		return q, p
	}
	return p, q
}

// tryApply runs a recursive worker and, if it fails with an out-of-memory
// condition, runs one full garbage collection and retries exactly once
// before giving up: the two-attempt apply/minus retry described in the
// design. disable_gc withholds the retry entirely, since a manager
// configured that way must never collect.
func (m *Manager) tryApply(f func() (int, error)) (int, error) {
	res, err := f()
	if err != errMemory || m.config.disableGC {
		return res, err
	}
	m.gc()
	return f()
}

// AddN returns the sum of a sequence of polynomials.
func (m *Manager) AddN(ps ...Poly) Poly {
	if len(ps) == 0 {
		return m.Zero()
	}
	if len(ps) == 1 {
		return ps[0]
	}
	return m.Add(ps[0], m.AddN(ps[1:]...))
}

// MulN returns the product of a sequence of polynomials.
func (m *Manager) MulN(ps ...Poly) Poly {
	if len(ps) == 0 {
		return m.One()
	}
	if len(ps) == 1 {
		return ps[0]
	}
	return m.Mul(ps[0], m.MulN(ps[1:]...))
}

// Add returns the polynomial p + q.
func (m *Manager) Add(p, q Poly) Poly {
	m.initref()
	m.pushref(*p)
	m.pushref(*q)
	res, err := m.tryApply(func() (int, error) { return m.add(*p, *q) })
	m.popref(2)
	assertf(err == nil, "pdd: Add: %v", err)
	return m.retnode(res)
}

// add and its siblings below never push their own p, q arguments: whatever
// called them (ultimately one of the exported wrappers) has already rooted
// both operands, and marking is transitive, so every node reachable from an
// already-rooted node survives a collection for free. Only freshly built
// results that are not yet a child of anything need a pushref, to survive
// between being computed and being wired into their parent by mkPoly. Each
// return path pops exactly what it pushed, including on error, so a retry
// after try_gc starts from the same clean refstack depth as the first
// attempt.
func (m *Manager) add(p, q int) (int, error) {
	p, q = m.order(p, q)
	if m.isZero(p) {
		return q, nil
	}
	if m.isZero(q) {
		return p, nil
	}
	if m.isValue(p) && m.isValue(q) {
		return m.imkVal(m.val(p).Add(m.val(q)))
	}

	if e, ok := m.cacheLookup(p, q, opAdd); ok && !e.pending {
		return e.result, nil
	}
	m.cacheBegin(p, q, opAdd)

	var lo, hi, res int
	var err error
	if m.isValue(q) || m.level(p) > m.level(q) {
		// q does not depend on x_level(p): it folds entirely into the
		// constant part of p.
		lo, err = m.add(m.lo(p), q)
		if err != nil {
			m.cacheAbort(p, q, opAdd)
			return 0, err
		}
		m.pushref(lo)
		hi = m.hi(p)
		res, err = m.mkPoly(m.level(p), lo, hi)
		m.popref(1)
	} else {
		lo, err = m.add(m.lo(p), m.lo(q))
		if err != nil {
			m.cacheAbort(p, q, opAdd)
			return 0, err
		}
		m.pushref(lo)
		hi, err = m.add(m.hi(p), m.hi(q))
		if err != nil {
			m.popref(1)
			m.cacheAbort(p, q, opAdd)
			return 0, err
		}
		m.pushref(hi)
		res, err = m.mkPoly(m.level(p), lo, hi)
		m.popref(2)
	}
	if err != nil {
		m.cacheAbort(p, q, opAdd)
		return 0, err
	}

	m.cacheStore(p, q, opAdd, res)
	return res, nil
}

// Sub returns the polynomial p - q.
func (m *Manager) Sub(p, q Poly) Poly {
	m.initref()
	m.pushref(*p)
	m.pushref(*q)
	res, err := m.tryApply(func() (int, error) {
		mq, err := m.minus(*q)
		if err != nil {
			return 0, err
		}
		m.pushref(mq)
		res, err := m.add(*p, mq)
		m.popref(1)
		return res, err
	})
	m.popref(2)
	assertf(err == nil, "pdd: Sub: %v", err)
	return m.retnode(res)
}

// Minus returns the polynomial -p.
func (m *Manager) Minus(p Poly) Poly {
	m.initref()
	m.pushref(*p)
	res, err := m.tryApply(func() (int, error) { return m.minus(*p) })
	m.popref(1)
	assertf(err == nil, "pdd: Minus: %v", err)
	return m.retnode(res)
}

func (m *Manager) minus(p int) (int, error) {
	if m.config.mod2 {
		// -1 == 1 in GF(2): negation is the identity.
		return p, nil
	}
	if m.isZero(p) {
		return p, nil
	}
	if e, ok := m.cacheLookup(p, p, opMinus); ok && !e.pending {
		return e.result, nil
	}
	m.cacheBegin(p, p, opMinus)

	var res int
	var err error
	if m.isValue(p) {
		res, err = m.imkVal(m.val(p).Neg())
	} else {
		var lo, hi int
		lo, err = m.minus(m.lo(p))
		if err == nil {
			m.pushref(lo)
			hi, err = m.minus(m.hi(p))
			if err != nil {
				m.popref(1)
			} else {
				m.pushref(hi)
				res, err = m.mkPoly(m.level(p), lo, hi)
				m.popref(2)
			}
		}
	}
	if err != nil {
		m.cacheAbort(p, p, opMinus)
		return 0, err
	}
	m.cacheStore(p, p, opMinus, res)
	return res, nil
}

// Mul returns the polynomial p * q.
func (m *Manager) Mul(p, q Poly) Poly {
	m.initref()
	m.pushref(*p)
	m.pushref(*q)
	res, err := m.tryApply(func() (int, error) { return m.mul(*p, *q) })
	m.popref(2)
	assertf(err == nil, "pdd: Mul: %v", err)
	return m.retnode(res)
}

func (m *Manager) mul(p, q int) (int, error) {
	p, q = m.order(p, q)
	if m.isZero(p) || m.isZero(q) {
		return zeroID, nil
	}
	if m.isOne(p) {
		return q, nil
	}
	if m.isOne(q) {
		return p, nil
	}
	if m.isValue(p) && m.isValue(q) {
		return m.imkVal(m.val(p).Mul(m.val(q)))
	}

	if e, ok := m.cacheLookup(p, q, opMul); ok && !e.pending {
		return e.result, nil
	}
	m.cacheBegin(p, q, opMul)

	var res int
	var err error
	switch {
	case m.isValue(q) || m.level(p) > m.level(q):
		// q is a scalar with respect to x_level(p): distribute it over both
		// branches of p.
		var lo, hi int
		lo, err = m.mul(m.lo(p), q)
		if err == nil {
			m.pushref(lo)
			hi, err = m.mul(m.hi(p), q)
			if err != nil {
				m.popref(1)
			} else {
				m.pushref(hi)
				res, err = m.mkPoly(m.level(p), lo, hi)
				m.popref(2)
			}
		}
	case m.config.mod2:
		res, err = m.mulMod2(p, q)
	default:
		res, err = m.mulGeneric(p, q)
	}
	if err != nil {
		m.cacheAbort(p, q, opMul)
		return 0, err
	}

	m.cacheStore(p, q, opMul, res)
	return res, nil
}

// mulGeneric multiplies two decision nodes at the same level over Q:
// (x*hi_p+lo_p)(x*hi_q+lo_q) = x*(x*hi_p*hi_q + hi_p*lo_q + lo_p*hi_q) + lo_p*lo_q
func (m *Manager) mulGeneric(p, q int) (int, error) {
	level := m.level(p)
	lop, hip, loq, hiq := m.lo(p), m.hi(p), m.lo(q), m.hi(q)

	loRes, err := m.mul(lop, loq)
	if err != nil {
		return 0, err
	}
	m.pushref(loRes)

	hh, err := m.mul(hip, hiq)
	if err != nil {
		m.popref(1)
		return 0, err
	}
	m.pushref(hh)
	sq, err := m.mkPoly(level, zeroID, hh)
	if err != nil {
		m.popref(2)
		return 0, err
	}
	m.pushref(sq)

	cross1, err := m.mul(hip, loq)
	if err != nil {
		m.popref(3)
		return 0, err
	}
	m.pushref(cross1)
	cross2, err := m.mul(lop, hiq)
	if err != nil {
		m.popref(4)
		return 0, err
	}
	m.pushref(cross2)

	crossSum, err := m.add(cross1, cross2)
	if err != nil {
		m.popref(5)
		return 0, err
	}
	m.pushref(crossSum)
	hiRes, err := m.add(sq, crossSum)
	if err != nil {
		m.popref(6)
		return 0, err
	}
	m.pushref(hiRes)

	res, err := m.mkPoly(level, loRes, hiRes)
	m.popref(7)
	return res, err
}

// mulMod2 multiplies two decision nodes at the same level over GF(2), using
// x*x = x to fold the squared term back into the linear one:
// (xa+b)(xc+d) = x((a+b)(c+d)+bd) + bd   (mod 2)
func (m *Manager) mulMod2(p, q int) (int, error) {
	level := m.level(p)
	a, b, c, d := m.hi(p), m.lo(p), m.hi(q), m.lo(q)

	s1, err := m.add(a, b)
	if err != nil {
		return 0, err
	}
	m.pushref(s1)

	s2, err := m.add(c, d)
	if err != nil {
		m.popref(1)
		return 0, err
	}
	m.pushref(s2)

	t, err := m.mul(s1, s2)
	if err != nil {
		m.popref(2)
		return 0, err
	}
	m.pushref(t)

	bd, err := m.mul(b, d)
	if err != nil {
		m.popref(3)
		return 0, err
	}
	m.pushref(bd)

	hiRes, err := m.add(t, bd)
	if err != nil {
		m.popref(4)
		return 0, err
	}
	m.pushref(hiRes)

	res, err := m.mkPoly(level, bd, hiRes)
	m.popref(5)
	return res, err
}

// mkPoly builds the decision node x_level*hi+lo, applying the structural
// short-circuit hi == 0 => lo (a node with a zero leading coefficient is just
// its constant part, per I2/I3).
func (m *Manager) mkPoly(level, lo, hi int) (int, error) {
	if m.isZero(hi) {
		return lo, nil
	}
	return m.insertDecision(level, lo, hi)
}
