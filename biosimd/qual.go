// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

// QualMissing is the value .bam uses to fill the qual field of a record whose
// base qualities were not stored.
const QualMissing = 0xff

// IsQualMissing returns true iff qual is the .bam encoding of an absent
// quality string: empty, or starting with QualMissing.
func IsQualMissing(qual []byte) bool {
	return len(qual) == 0 || qual[0] == QualMissing
}
