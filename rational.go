// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import "math/big"

// Rational is the exact, arbitrary-precision coefficient type used by a
// Manager in its default mode. spec.md treats rational arithmetic as an
// external collaborator ("assumed available as an abstract Rational"); we
// ground the concrete type on math/big, the same package the teacher uses
// for Satcount's arbitrary-precision counting (operations.go) and that
// Consensys-gnark uses throughout its field-arithmetic packages.
//
// A zero Rational is the rational zero, same as *big.Rat.
type Rational struct {
	r big.Rat
}

// NewRational builds the rational num/den. den defaults to 1 if omitted.
func NewRational(num int64, den ...int64) Rational {
	d := int64(1)
	if len(den) > 0 {
		d = den[0]
	}
	var res Rational
	res.r.SetFrac64(num, d)
	return res
}

// RationalFromBigRat wraps an existing big.Rat.
func RationalFromBigRat(r *big.Rat) Rational {
	var res Rational
	res.r.Set(r)
	return res
}

func zeroRational() Rational {
	return Rational{}
}

func oneRational() Rational {
	var res Rational
	res.r.SetInt64(1)
	return res
}

func (a Rational) IsZero() bool {
	return a.r.Sign() == 0
}

func (a Rational) IsOne() bool {
	return a.r.Cmp(big.NewRat(1, 1)) == 0
}

func (a Rational) IsInt() bool {
	return a.r.IsInt()
}

func (a Rational) Sign() int {
	return a.r.Sign()
}

func (a Rational) Cmp(b Rational) int {
	return a.r.Cmp(&b.r)
}

func (a Rational) Equal(b Rational) bool {
	return a.r.Cmp(&b.r) == 0
}

func (a Rational) Add(b Rational) Rational {
	var res Rational
	res.r.Add(&a.r, &b.r)
	return res
}

func (a Rational) Sub(b Rational) Rational {
	var res Rational
	res.r.Sub(&a.r, &b.r)
	return res
}

func (a Rational) Mul(b Rational) Rational {
	var res Rational
	res.r.Mul(&a.r, &b.r)
	return res
}

func (a Rational) Quo(b Rational) Rational {
	assertf(b.Sign() != 0, "pdd: division by zero rational")
	var res Rational
	res.r.Quo(&a.r, &b.r)
	return res
}

func (a Rational) Neg() Rational {
	var res Rational
	res.r.Neg(&a.r)
	return res
}

// Mod2 reduces a into {0, 1}, the GF(2) residue of its numerator, assuming a
// is an integer (coefficients are only ever reduced mod 2 right after being
// constructed from an integer literal or a prior GF(2) result).
func (a Rational) Mod2() Rational {
	if !a.IsInt() {
		return a
	}
	num := new(big.Int).Set(a.r.Num())
	two := big.NewInt(2)
	m := new(big.Int).Mod(num, two)
	var res Rational
	res.r.SetInt(m)
	return res
}

// GCD returns the positive greatest common divisor of two integer rationals,
// used by common_factors to reduce the two coefficients of an S-polynomial.
func (a Rational) GCD(b Rational) Rational {
	assertf(a.IsInt() && b.IsInt(), "pdd: GCD of non-integer rationals")
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.r.Num()), new(big.Int).Abs(b.r.Num()))
	var res Rational
	res.r.SetInt(g)
	return res
}

func (a Rational) String() string {
	return a.r.RatString()
}
