// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package bam reads .bam records as plain ASCII sequence and Phred+33
// quality strings, the form expected by the read statistics code.  It is a
// thin layer over github.com/grailbio/hts/bam.
package bam
