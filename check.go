// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// CheckBalance - verify the AVL condition and the stored heights at
// every node
func (tree *Tree[K, V]) CheckBalance() bool {
	return tree.checkBalance(tree.root)
}

// internal: consistency checker
func (tree *Tree[K, V]) checkBalance(p *node[K, V]) bool {
	if nil == p {
		return true
	}
	if h := 1 + max(height(p.left), height(p.right)); h != p.height {
		tree.failf("height fail at node: %v  actual: %d  expected: %d", p.key, p.height, h)
		return false
	}
	if b := balanceFactor(p); b < -1 || b > 1 {
		tree.failf("balance fail at node: %v  factor: %+d", p.key, b)
		return false
	}
	if !tree.checkBalance(p.left) {
		return false
	}
	return tree.checkBalance(p.right)
}

// CheckOrder - verify that keys are in strictly ascending comparator
// order, which also proves that no duplicates are stored
func (tree *Tree[K, V]) CheckOrder() bool {
	keys := tree.InOrder()
	for i := 1; i < len(keys); i += 1 {
		if tree.compare(keys[i-1], keys[i]) >= 0 {
			tree.failf("order fail at node: %v  not below: %v", keys[i-1], keys[i])
			return false
		}
	}
	return true
}

// CheckCounts - verify that the recorded node count matches the
// actual node population
func (tree *Tree[K, V]) CheckCounts() bool {
	n := countNodes(tree.root)
	if n != tree.count {
		tree.failf("count fail: actual: %d  expected: %d", n, tree.count)
		return false
	}
	return true
}

func countNodes[K any, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
