// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package pdd defines a concrete type for Polynomial Decision Diagrams (PDD), a
data structure used to efficiently represent multivariate polynomials over the
rationals (or, optionally, over GF(2)) as a shared, hash-consed DAG.

Basics

Each Manager has a fixed number of variables, declared when it is initialized
(using the function New), and each variable is represented by an (integer)
index in the interval [0..NumVars). Each variable also sits at a level in
[1..NumVars] (level 0 is reserved for constants); initially variable v is at
level v+1, and SetLevel2Var can reassign them. A single program can work
with multiple independent managers, possibly over different numbers of
variables.

Most operations return a Poly: an opaque handle to a node in the shared DAG. A
decision node denotes x_level*hi + lo, where hi and lo are themselves Poly
nodes (hi may sit at the same level as its parent, encoding a higher power of
x_level); a value node holds a rational coefficient. The constants 0 and 1 are
shared across every manager.

Automatic memory management

The library is written in pure Go. Like the BDD libraries it descends from, it
piggybacks on the host language's garbage collector: "external" references to
Poly handles made by user code are automatically released via
runtime.SetFinalizer, while the manager itself runs its own mark-and-sweep
collection over the node pool, value pool and operator cache whenever the free
list runs dry. AddRef/DelRef are also available for code that wants explicit
control over a handle's lifetime.

Logging uses zerolog; SetLogger/DisableLogging/Logger control the package-wide
logger used for diagnostics such as pool growth and collection activity.
*/
package pdd
