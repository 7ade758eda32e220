// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Insert - insert a new node into the tree
// an insert with an existing key overwrites the stored value and
// leaves the tree structure unchanged
// returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	root, added := tree.insert(key, value, tree.root)
	tree.root = root
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func (tree *Tree[K, V]) insert(key K, value V, p *node[K, V]) (*node[K, V], bool) {
	if nil == p { // insert new node
		p = &node[K, V]{
			key:    key,
			value:  value,
			height: 1,
		}
		return p, true
	}
	added := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, added = tree.insert(key, value, p.left)
	case c > 0: // key > p.key
		p.right, added = tree.insert(key, value, p.right)
	default: // duplicate key: overwrite value only
		p.value = value
		return p, false
	}
	return tree.rebalance(p), added
}
