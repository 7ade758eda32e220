// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Search - find a specific item
// returns the stored value and true when the key is present
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p.value, true
		}
	}
	var value V
	return value, false
}

// Contains - true if a node with the key is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	_, ok := tree.Search(key)
	return ok
}
