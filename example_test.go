// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd_test

import (
	"fmt"

	"github.com/dalzilio/pdd"
)

// This example shows the basic usage of the package: create a manager,
// compute some polynomials and print the result.
func Example_basic() {
	// Create a new manager with 3 variables and an initial pool of 1000 nodes.
	m, _ := pdd.New(3, pdd.Nodesize(1000))

	x0 := m.MkVar(0)
	x1 := m.MkVar(1)
	c := m.MkVal(pdd.NewRational(2))

	// p == 2*x0*x1 + x0
	p := m.Add(m.Mul(c, m.Mul(x0, x1)), x0)
	fmt.Println(m.String(p))
	fmt.Println(m.Degree(p))
	// Output:
	// 2*x1*x0 + 1*x0
	// 2
}
