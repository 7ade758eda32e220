// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avltree - an AVL balanced tree with strictly owned sub-trees
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs, reworked here to
// derive balance from stored sub-tree heights so that all rebalancing
// is driven by recursive return values; there are no parent pointers.
//
// This version allows for data associated with a key, which is
// overwritten by an insert with the same key.  The ordering of keys is
// fixed when a tree is created: either the natural ordering of the key
// type or a supplied comparison function.
package avltree
