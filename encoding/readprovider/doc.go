// Package readprovider opens FASTQ and .bam files as a uniform stream of
// (sequence, quality) records.  Callers iterate a Source without knowing the
// container format:
//
//   src, err := readprovider.Open(ctx, path)
//   ...
//   for src.Scan() {
//     rec := src.Record()
//     ... rec.Seq(), rec.Qual() ...
//   }
//   err = src.Close()
package readprovider
