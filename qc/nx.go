package qc

// Nx returns the length-weighted percentile of sortedAsc, which must be
// sorted in ascending order: the length of the first read at which the
// running sum of lengths strictly exceeds fraction * sum(sortedAsc).  The
// target is truncated to an integer before the comparison.
//
// Nx returns the largest length if no prefix exceeds the target (fraction
// >= 1), and 0 if sortedAsc is empty.
//
// Note the direction: scanning from the shortest read, Nx(l, 0.5) is the
// conventional N50, while the conventional N90 is Nx(l, 0.1).  See
// Stats.Nx.
func Nx(sortedAsc []int, fraction float64) int {
	if len(sortedAsc) == 0 {
		return 0
	}
	var sum int64
	for _, l := range sortedAsc {
		sum += int64(l)
	}
	target := int64(float64(sum) * fraction)
	var cum int64
	for _, l := range sortedAsc {
		if cum += int64(l); cum > target {
			return l
		}
	}
	return sortedAsc[len(sortedAsc)-1]
}
