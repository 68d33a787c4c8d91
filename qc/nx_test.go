package qc_test

import (
	"testing"

	"github.com/grailbio/readqc/qc"
	"github.com/grailbio/testutil/expect"
)

func TestNx(t *testing.T) {
	for _, test := range []struct {
		lengths  []int
		fraction float64
		want     int
	}{
		{nil, 0.5, 0},
		{[]int{5}, 0.5, 5},
		{[]int{5}, 1e-9, 5},
		{[]int{5}, 1, 5},
		{[]int{1, 2, 3, 4, 10}, 0.5, 10},
		{[]int{1, 2, 3, 4, 10}, 0.1, 2},
		{[]int{1, 2, 3, 4, 10}, 0.3, 4},
		{[]int{1, 2, 3, 4, 10}, 1, 10},
		{[]int{1, 2, 3, 4, 10}, 1e-6, 1},
		{[]int{1, 2, 3, 4, 10}, 0, 1},
		{[]int{2, 2, 2, 2}, 0.5, 2},
	} {
		expect.EQ(t, qc.Nx(test.lengths, test.fraction), test.want, "lengths=%v fraction=%v", test.lengths, test.fraction)
	}
}

func TestNxSingleRead(t *testing.T) {
	for _, f := range []float64{0.01, 0.25, 0.5, 0.75, 0.99, 1} {
		expect.EQ(t, qc.Nx([]int{151}, f), 151)
	}
}
