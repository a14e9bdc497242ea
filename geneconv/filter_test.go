package geneconv

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestKeep(t *testing.T) {
	o := Opts{PThreshold: 0.05, MinLength: 500}
	tests := []struct {
		frag Fragment
		want bool
	}{
		{Fragment{Type: GlobalInner, Start: 100, End: 700, SimP: 0.01, Length: 601}, true},
		// Thresholds are inclusive on both criteria.
		{Fragment{Type: GlobalInner, Start: 100, End: 599, SimP: 0.05, Length: 500}, true},
		{Fragment{Type: GlobalInner, Start: 100, End: 598, SimP: 0.05, Length: 499}, false},
		{Fragment{Type: GlobalInner, Start: 100, End: 700, SimP: 0.0501, Length: 601}, false},
		{Fragment{Type: PairwiseOuter, Start: 1, End: 600, SimP: 4.2e-05, Length: 600}, true},
	}
	for _, test := range tests {
		expect.EQ(t, o.Keep(test.frag), test.want)
	}
}

func TestFilter(t *testing.T) {
	frags := []Fragment{
		{Type: GlobalInner, Start: 5210, End: 6890, SimP: 0.0002, Length: 1681},
		{Type: GlobalInner, Start: 10050, End: 10420, SimP: 0.031, Length: 371},
		{Type: PairwiseInner, Start: 7105, End: 8344, SimP: 4.2e-05, Length: 1240},
		{Type: PairwiseInner, Start: 11200, End: 11950, SimP: 0.44, Length: 751},
	}
	kept := Filter(frags, DefaultOpts)
	expect.EQ(t, kept, []Fragment{frags[0], frags[2]})

	// Filtering is idempotent under the same thresholds.
	expect.EQ(t, Filter(kept, DefaultOpts), kept)

	// The input is left alone.
	expect.EQ(t, len(frags), 4)
}
