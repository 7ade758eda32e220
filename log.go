// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"fmt"
)

// internal: rotation tracing, only when a logging channel is attached
func (tree *Tree[K, V]) trace(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}

// internal: consistency check failure report
// falls back to stdout when no logging channel is attached
func (tree *Tree[K, V]) failf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Errorf(format, arguments...)
		return
	}
	fmt.Printf(format+"\n", arguments...)
}
