// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// InOrder - all keys in ascending comparator order
// a fresh slice is built on every call
func (tree *Tree[K, V]) InOrder() []K {
	return tree.root.inorder(make([]K, 0, tree.count))
}

// internal: left, self, right
func (p *node[K, V]) inorder(keys []K) []K {
	if nil == p {
		return keys
	}
	keys = p.left.inorder(keys)
	keys = append(keys, p.key)
	return p.right.inorder(keys)
}
