// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"cmp"

	"github.com/bitmark-inc/logger"
)

// CompareFunc - ordering for keys
// must return a value negative, zero or positive corresponding to
// a < b, a == b and a > b
//
// the function must describe a consistent total order; the tree cannot
// detect a faulty comparison and will silently store keys out of order
type CompareFunc[K any] func(a K, b K) int

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root    *node[K, V]
	count   int
	compare CompareFunc[K]
	log     *logger.L
}

// New - create an initially empty tree using the natural ordering of
// the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWithCompare[K, V](cmp.Compare[K])
}

// NewWithCompare - create an initially empty tree with its own key
// ordering
func NewWithCompare[K any, V any](compare CompareFunc[K]) *Tree[K, V] {
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - number of levels in the tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// SetLogger - attach a logging channel for rotation tracing and
// consistency check reports; nil detaches
func (tree *Tree[K, V]) SetLogger(log *logger.L) {
	tree.log = log
}
