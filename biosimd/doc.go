// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides byte-array kernels for turning .bam record fields
// into the ASCII representations used by the read statistics code: 4-bit
// packed bases to ASCII, plus the at-or-above counter behind quality yield.
// Byte counting and rebasing come from github.com/grailbio/base/simd.
package biosimd
