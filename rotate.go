// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// internal: rotate p left, promoting its right child
// returns the new sub-tree root with heights recomputed
func (tree *Tree[K, V]) rotateLeft(p *node[K, V]) *node[K, V] {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	p.setHeight()
	p1.setHeight()
	return p1
}

// internal: rotate p right, promoting its left child
// returns the new sub-tree root with heights recomputed
func (tree *Tree[K, V]) rotateRight(p *node[K, V]) *node[K, V] {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	p.setHeight()
	p1.setHeight()
	return p1
}

// internal: restore the AVL condition at p after a change in one of
// its sub-trees
//
// at most one of the four rotation cases fires; the choice depends on
// the sign of the balance factor at p and at the taller child
func (tree *Tree[K, V]) rebalance(p *node[K, V]) *node[K, V] {
	p.setHeight()
	switch b := balanceFactor(p); {
	case b > 1:
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			tree.trace("LR rotation at key: %v", p.key)
			p.left = tree.rotateLeft(p.left)
		} else {
			// single LL rotation
			tree.trace("LL rotation at key: %v", p.key)
		}
		return tree.rotateRight(p)
	case b < -1:
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			tree.trace("RL rotation at key: %v", p.key)
			p.right = tree.rotateRight(p.right)
		} else {
			// single RR rotation
			tree.trace("RR rotation at key: %v", p.key)
		}
		return tree.rotateLeft(p)
	}
	return p
}
