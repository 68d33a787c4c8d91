package bam

import "github.com/grailbio/hts/sam"

// IsPrimary returns true if record is neither a secondary nor a
// supplementary alignment.  Exactly one primary record exists per read in a
// well-formed .bam file.
func IsPrimary(record *sam.Record) bool {
	return record.Flags&(sam.Secondary|sam.Supplementary) == 0
}
