// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

// Count8GreaterEq returns the number of bytes in src with value >= val.
// base/simd has no at-or-above counter, so this stays a scalar loop.
func Count8GreaterEq(src []byte, val byte) int {
	cnt := 0
	for _, srcByte := range src {
		if srcByte >= val {
			cnt++
		}
	}
	return cnt
}
