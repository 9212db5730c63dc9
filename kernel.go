// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import (
	"errors"
)

// _MAXLEVEL is the maximal number of levels (and therefore variables) in a
// manager.
const _MAXLEVEL int = 0x1FFFFF

// max_rc is the saturating value of a node's reference counter. A node whose
// refcount reaches max_rc is pinned: it is never incremented, decremented, or
// reclaimed. Constants and variable nodes are created directly at max_rc.
const max_rc int32 = 0x3FFFFFFF

// _MINFREENODES is the minimal percentage of free nodes that must remain
// after a garbage collection, below which insert_node grows the node pool
// instead of trying to reuse the freshly-collected space.
const _MINFREENODES int = 20

// _DEFAULTMAXNODES is the default ceiling on the number of nodes a manager
// will allocate, following the original pdd_manager (1 << 24, 16M nodes).
const _DEFAULTMAXNODES int = 1 << 24

// _DEFAULTNODESIZE is the initial size of the node pool when a caller does
// not request a specific one.
const _DEFAULTNODESIZE int = 1024

var errMemory = errors.New("pdd: unable to free memory or grow the node pool")
var errInvariant = errors.New("pdd: invariant violation")
