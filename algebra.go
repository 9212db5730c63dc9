// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

// LeadingTerm describes the lexicographically greatest monomial of a
// polynomial, where variables are compared in level order (the same order
// that orients the diagram itself): any monomial touching a higher-level
// variable outranks one that does not, and among monomials agreeing on that
// variable the one with the higher exponent wins. Coeff is the constant the
// monomial is multiplied by; Exponents maps variable index to exponent and
// omits variables with exponent zero.
type LeadingTerm struct {
	Coeff     Rational
	Exponents map[int]int
}

// leadingTerm walks the hi branch of every decision node it meets, since
// x_level*hi always outranks lo regardless of what hi or lo themselves
// encode: hi carries every monomial that involves x_level at all.
func (m *Manager) leadingTerm(p int) LeadingTerm {
	exps := map[int]int{}
	for !m.isValue(p) {
		exps[m.level2var[m.level(p)]]++
		p = m.hi(p)
	}
	return LeadingTerm{Coeff: m.val(p), Exponents: exps}
}

// Lt returns the leading term of p.
func (m *Manager) Lt(p Poly) LeadingTerm {
	return m.leadingTerm(*p)
}

// lmDivides reports whether the leading monomial of p divides the leading
// monomial of q: every variable exponent in p's leading term must be no
// greater than q's.
func lmDivides(p, q LeadingTerm) bool {
	for v, e := range p.Exponents {
		if q.Exponents[v] < e {
			return false
		}
	}
	return true
}

// LmDivides reports whether the leading monomial of p divides that of q.
func (m *Manager) LmDivides(p, q Poly) bool {
	return lmDivides(m.leadingTerm(*p), m.leadingTerm(*q))
}

// DifferentLeadingTerm reports whether p and q have distinct leading
// monomials (their coefficients may still differ even when the exponents
// agree; this only compares the monomial, not the coefficient).
func (m *Manager) DifferentLeadingTerm(p, q Poly) bool {
	return !sameMonomial(m.leadingTerm(*p).Exponents, m.leadingTerm(*q).Exponents)
}

func sameMonomial(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for v, e := range a {
		if b[v] != e {
			return false
		}
	}
	return true
}

// mkMonomial builds the polynomial coeff * prod(x_v^e for (v,e) in exps). It
// protects its own intermediate results on the refstack but leaves the stack
// depth unchanged on return: callers that need the result to survive a
// further allocating call must pushref it themselves before making one.
func (m *Manager) mkMonomial(coeff Rational, exps map[int]int) (int, error) {
	res, err := m.imkVal(coeff)
	if err != nil {
		return 0, err
	}
	pushed := 0
	for v, e := range exps {
		m.pushref(res)
		pushed++
		for i := 0; i < e; i++ {
			res, err = m.mul(res, m.var2pdd[v])
			if err != nil {
				m.popref(pushed)
				return 0, err
			}
			m.pushref(res)
			pushed++
		}
	}
	m.popref(pushed)
	return res, nil
}

// ltQuotient returns -lt(q)/lt(p), provided lm(p) divides lm(q): the
// multiplier that, applied to p, cancels q's leading term when added to q.
// Precondition: LmDivides(p, q).
func (m *Manager) ltQuotient(p, q int) (int, error) {
	ltp, ltq := m.leadingTerm(p), m.leadingTerm(q)
	assertf(lmDivides(ltp, ltq), "pdd: ltQuotient: leading monomial of p does not divide q's")
	exps := map[int]int{}
	for v, e := range ltq.Exponents {
		if rem := e - ltp.Exponents[v]; rem > 0 {
			exps[v] = rem
		}
	}
	coeff := ltq.Coeff.Quo(ltp.Coeff).Neg()
	return m.mkMonomial(coeff, exps)
}

// LtQuotient returns -lt(q)/lt(p) as a handle. Precondition: LmDivides(p, q).
func (m *Manager) LtQuotient(p, q Poly) Poly {
	assertf(m.LmDivides(p, q), "pdd: LtQuotient: leading monomial of p does not divide q's")
	m.initref()
	m.pushref(*p)
	m.pushref(*q)
	res, err := m.ltQuotient(*p, *q)
	m.popref(2)
	assertf(err == nil, "pdd: LtQuotient: %v", err)
	return m.retnode(res)
}

// CommonFactor holds the exponent lists and leading coefficients
// CommonFactors extracts to superpose two leading monomials onto their lcm.
type CommonFactor struct {
	PExp, QExp     map[int]int
	PCoeff, QCoeff Rational
}

// CommonFactors computes, for the leading monomials of a and b, the variable
// lists p and q such that x^p*lm(a) = x^q*lm(b) = lcm(lm(a), lm(b)), and the
// two leading coefficients (integer-reduced by their gcd when both are
// integral). ok is false when the leading monomials share no variable, the
// case where there is nothing to superpose.
func (m *Manager) CommonFactors(a, b Poly) (CommonFactor, bool) {
	lta, ltb := m.leadingTerm(*a), m.leadingTerm(*b)
	lcm := map[int]int{}
	shared := false
	for v, e := range lta.Exponents {
		lcm[v] = e
		if ltb.Exponents[v] > 0 {
			shared = true
		}
	}
	for v, e := range ltb.Exponents {
		if e > lcm[v] {
			lcm[v] = e
		}
	}
	if !shared {
		return CommonFactor{}, false
	}
	pc, qc := lta.Coeff, ltb.Coeff
	if pc.IsInt() && qc.IsInt() && !pc.IsZero() && !qc.IsZero() {
		g := pc.GCD(qc)
		if !g.IsZero() {
			pc, qc = pc.Quo(g), qc.Quo(g)
		}
	}
	return CommonFactor{
		PExp:   subExponents(lcm, lta.Exponents),
		QExp:   subExponents(lcm, ltb.Exponents),
		PCoeff: pc,
		QCoeff: qc,
	}, true
}

// reduceOnMatch repeatedly cancels the leading term of p using q, while lm(q)
// divides lm(p): qt = ltQuotient(q, p), r = mul(qt, q), p = add(p, r), since
// qt is built so r's leading term is exactly -lt(p). Returns the final p.
func (m *Manager) reduceOnMatch(p, q int) (int, error) {
	cur := p
	for !m.isValue(cur) {
		ltCur, ltq := m.leadingTerm(cur), m.leadingTerm(q)
		if !lmDivides(ltq, ltCur) {
			break
		}
		m.pushref(cur)
		m.pushref(q)

		quot, err := m.ltQuotient(q, cur)
		if err != nil {
			m.popref(2)
			return 0, err
		}
		m.pushref(quot)

		r, err := m.mul(quot, q)
		if err != nil {
			m.popref(3)
			return 0, err
		}
		m.pushref(r)

		next, err := m.add(cur, r)
		m.popref(4)
		if err != nil {
			return 0, err
		}
		cur = next
	}
	return cur, nil
}

func (m *Manager) reduce(p, q int) (int, error) {
	if m.isZero(q) {
		return p, nil
	}
	if m.isValue(p) {
		return p, nil
	}
	if m.level(p) < m.level(q) {
		return p, nil
	}
	if e, ok := m.cacheLookup(p, q, opReduce); ok && !e.pending {
		return e.result, nil
	}
	m.cacheBegin(p, q, opReduce)

	var res int
	var err error
	if m.level(p) > m.level(q) {
		var lo, hi int
		lo, err = m.reduce(m.lo(p), q)
		if err == nil {
			m.pushref(lo)
			hi, err = m.reduce(m.hi(p), q)
			if err != nil {
				m.popref(1)
			} else {
				m.pushref(hi)
				res, err = m.mkPoly(m.level(p), lo, hi)
				m.popref(2)
			}
		}
	} else {
		res, err = m.reduceOnMatch(p, q)
	}
	if err != nil {
		m.cacheAbort(p, q, opReduce)
		return 0, err
	}

	m.cacheStore(p, q, opReduce, res)
	return res, nil
}

// Reduce computes p mod q: repeatedly cancelling p's leading term against
// q's wherever lm(q) divides it, the polynomial remainder reduction used by
// Gröbner-basis normalization.
func (m *Manager) Reduce(p, q Poly) Poly {
	m.initref()
	m.pushref(*p)
	m.pushref(*q)
	res, err := m.tryApply(func() (int, error) { return m.reduce(*p, *q) })
	m.popref(2)
	assertf(err == nil, "pdd: Reduce: %v", err)
	return m.retnode(res)
}

// TrySpoly computes the S-polynomial of a and b: a scaled by its own exponent
// deficit PExp and the cross-operand's reduced leading coefficient QCoeff,
// minus b scaled the same way (QExp, PCoeff), so that the two scaled leading
// terms are equal and cancel under the subtraction. p, q, pc, qc come from
// CommonFactors, unless the leading monomials of a and b share no variable (ok
// is then false, and there is nothing to superpose).
func (m *Manager) TrySpoly(a, b Poly) (Poly, bool) {
	cf, ok := m.CommonFactors(a, b)
	if !ok {
		return nil, false
	}
	m.initref()
	m.pushref(*a)
	m.pushref(*b)

	aMono, err := m.mkMonomial(cf.QCoeff, cf.PExp)
	assertf(err == nil, "pdd: TrySpoly: %v", err)
	m.pushref(aMono)
	left, err := m.mul(*a, aMono)
	assertf(err == nil, "pdd: TrySpoly: %v", err)
	m.pushref(left)

	bMono, err := m.mkMonomial(cf.PCoeff, cf.QExp)
	assertf(err == nil, "pdd: TrySpoly: %v", err)
	m.pushref(bMono)
	right, err := m.mul(*b, bMono)
	assertf(err == nil, "pdd: TrySpoly: %v", err)
	m.pushref(right)

	negRight, err := m.minus(right)
	assertf(err == nil, "pdd: TrySpoly: %v", err)
	m.pushref(negRight)

	res, err := m.add(left, negRight)
	assertf(err == nil, "pdd: TrySpoly: %v", err)
	m.popref(7)
	return m.retnode(res), true
}

func subExponents(total, part map[int]int) map[int]int {
	res := map[int]int{}
	for v, e := range total {
		if rem := e - part[v]; rem > 0 {
			res[v] = rem
		}
	}
	return res
}

// ************************************************************
// Structural queries (§ traversal over the shared DAG).

// Degree returns the total degree of p: the highest sum of exponents among
// its monomials.
func (m *Manager) Degree(p Poly) int {
	return m.degree(*p)
}

func (m *Manager) degree(p int) int {
	if m.isValue(p) {
		return 0
	}
	d := 1 + m.degree(m.hi(p))
	if lo := m.degree(m.lo(p)); lo > d {
		d = lo
	}
	return d
}

// DagSize returns the number of distinct nodes in the shared DAG rooted at p.
func (m *Manager) DagSize(p Poly) int {
	m.initMark()
	return m.countMarked(*p)
}

func (m *Manager) countMarked(n int) int {
	if m.isMarked(n) {
		return 0
	}
	m.setMark(n)
	if m.isValue(n) {
		return 1
	}
	return 1 + m.countMarked(m.lo(n)) + m.countMarked(m.hi(n))
}

// TreeSize returns the number of nodes that would be needed to represent p if
// every shared subDAG were duplicated instead: the size of its unfolding into
// a tree.
func (m *Manager) TreeSize(p Poly) int {
	return m.treeSize(*p)
}

func (m *Manager) treeSize(n int) int {
	if m.isValue(n) {
		return 1
	}
	return 1 + m.treeSize(m.lo(n)) + m.treeSize(m.hi(n))
}

// FreeVars returns the sorted list of variables appearing in p.
func (m *Manager) FreeVars(p Poly) []int {
	m.initMark()
	seen := map[int]bool{}
	m.collectVars(*p, seen)
	vars := make([]int, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sortInts(vars)
	return vars
}

func (m *Manager) collectVars(n int, seen map[int]bool) {
	if m.isMarked(n) {
		return
	}
	m.setMark(n)
	if m.isValue(n) {
		return
	}
	seen[m.level2var[m.level(n)]] = true
	m.collectVars(m.lo(n), seen)
	m.collectVars(m.hi(n), seen)
}

// IsLinear reports whether p has total degree at most 1.
func (m *Manager) IsLinear(p Poly) bool {
	return m.degree(*p) <= 1
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
