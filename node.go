// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// a node in the tree
//
// each node exclusively owns its sub-trees; a leaf has height 1 and
// an absent sub-tree counts as height 0
type node[K any, V any] struct {
	left   *node[K, V] // left sub-tree
	right  *node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 + max height of sub-trees
}

// internal: height of a possibly absent sub-tree
func height[K any, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: recompute height from the sub-trees
func (p *node[K, V]) setHeight() {
	p.height = 1 + max(height(p.left), height(p.right))
}

// internal: left height minus right height
// the AVL condition bounds this to -1, 0, +1
func balanceFactor[K any, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}
