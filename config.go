// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

// configs stores the configurable parameters of a Manager. Values are set
// once, at construction time, through functional options passed to New.
type configs struct {
	numvars      int  // number of variables reserved at construction
	nodesize     int  // initial number of nodes in the node pool
	maxnumnodes  int  // hard ceiling on the node pool (0 means no ceiling)
	minfreenodes int  // minimum free-node percentage to keep after a GC before growing the pool
	disableGC    bool // if true, insert_node never triggers a GC, only growth
	mod2         bool // if true, coefficient arithmetic is GF(2)
}

func makeconfigs(numvars int) *configs {
	c := &configs{numvars: numvars}
	c.minfreenodes = _MINFREENODES
	c.maxnumnodes = _DEFAULTMAXNODES
	c.nodesize = _DEFAULTNODESIZE
	if c.nodesize < 2*numvars+2 {
		c.nodesize = 2*numvars + 2
	}
	return c
}

// Option configures a Manager at construction time.
type Option func(*configs)

// Nodesize sets a preferred initial size for the node pool. The default is
// large enough to hold the two constants and the pinned variable nodes.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.numvars+2 {
			c.nodesize = size
		}
	}
}

// MaxNumNodes sets a hard ceiling on the number of nodes the manager will
// ever allocate. Exceeding it raises the out-of-memory condition described in
// §7 of the design. The default is 2^24 (16M nodes), matching the original
// pdd_manager.
func MaxNumNodes(n int) Option {
	return func(c *configs) {
		c.maxnumnodes = n
	}
}

// MinFreeNodes sets the percentage of free nodes that must remain after a
// garbage collection before insert_node falls back to growing the pool. The
// default is 20%.
func MinFreeNodes(ratio int) Option {
	return func(c *configs) {
		c.minfreenodes = ratio
	}
}

// DisableGC turns off garbage collection inside insert_node: when the free
// list is empty, the manager only grows the node pool (or fails with
// out-of-memory once MaxNumNodes is reached). Useful for short-lived
// computations where the cost of collection outweighs its benefit.
func DisableGC() Option {
	return func(c *configs) {
		c.disableGC = true
	}
}

// Mod2Semantics switches coefficient arithmetic to GF(2): Minus becomes the
// identity and Mul uses the optimised identity described in §4.2. Must be
// set before any node is created.
func Mod2Semantics() Option {
	return func(c *configs) {
		c.mod2 = true
	}
}
