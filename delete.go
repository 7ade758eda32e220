// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Delete - removes a specific item from the tree
// a missing key is not an error, the tree is left unchanged
// returns the stored value and true when a node was removed
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	root, value, removed := tree.delete(key, tree.root)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return value, removed
}

// internal delete routine
//
// a found node is removed by one of three cases:
//   - no sub-trees: the node just disappears
//   - one sub-tree: the sub-tree takes the node's place
//   - two sub-trees: the in-order successor's key and value are copied
//     into the node and the successor's original node is deleted from
//     the right sub-tree
//
// every ancestor on the unwind is rebalanced; unlike insert a single
// delete can rotate at several levels
func (tree *Tree[K, V]) delete(key K, p *node[K, V]) (*node[K, V], V, bool) {
	var value V
	if nil == p { // key not in tree
		return nil, value, false
	}
	removed := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, value, removed = tree.delete(key, p.left)
	case c > 0: // key > p.key
		p.right, value, removed = tree.delete(key, p.right)
	default: // found: delete p
		value = p.value
		if nil == p.left {
			return p.right, value, true
		}
		if nil == p.right {
			return p.left, value, true
		}
		s := p.right // in-order successor: leftmost of right sub-tree
		for nil != s.left {
			s = s.left
		}
		p.key = s.key
		p.value = s.value
		p.right, _, _ = tree.delete(s.key, p.right)
		removed = true
	}
	if !removed { // nothing changed below p
		return p, value, false
	}
	return tree.rebalance(p), value, true
}
