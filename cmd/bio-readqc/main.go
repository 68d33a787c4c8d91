// bio-readqc computes read length, GC content, N content and base quality
// statistics over FASTQ and BAM files.
package main

import "github.com/grailbio/readqc/cmd/bio-readqc/cmd"

func main() {
	cmd.Run()
}
