// Package coverage computes per-position stacking coverage of significant
// gene-conversion fragments across a mitogenome, and summary statistics over
// a duplication region of interest.
package coverage

import (
	"fmt"

	"github.com/grailbio/base/errors"

	"github.com/Cazuya-Nagai/GeneConv-Visualizer/geneconv"
)

// Track holds one stacking-depth counter per 1-based genome position.  It is
// written once during aggregation and read-only afterward.
type Track struct {
	counts []int32 // counts[0] is unused; valid positions are 1..Len()
}

// NewTrack returns a track of the given genome length with zero coverage
// everywhere.
func NewTrack(length int) *Track {
	return &Track{counts: make([]int32, length+1)}
}

// Len returns the genome length spanned by the track.
func (t *Track) Len() int { return len(t.counts) - 1 }

// Depth returns the stacking depth at a 1-based position.  Positions outside
// the track have depth 0.
func (t *Track) Depth(pos int) int {
	if pos < 1 || pos >= len(t.counts) {
		return 0
	}
	return int(t.counts[pos])
}

// Max returns the deepest stacking count anywhere on the track.
func (t *Track) Max() int {
	var max int32
	for _, c := range t.counts {
		if c > max {
			max = c
		}
	}
	return int(max)
}

// Aggregate builds the stacking-coverage track for frags, incrementing every
// position each fragment spans.  A genomeLength of 0 infers the length as
// the maximum fragment end position observed; otherwise the fixed length is
// used and a fragment extending past it is an error.
//
// Fragments are expected to have passed the significance filter already.
// Interval orientation is still validated here: a reversed interval means
// the parse was miscalibrated against the report layout, or the report is
// corrupt, and either way the track cannot be trusted.
func Aggregate(frags []geneconv.Fragment, genomeLength int) (*Track, error) {
	length := genomeLength
	if length == 0 {
		for _, f := range frags {
			if f.End > length {
				length = f.End
			}
		}
	}
	t := NewTrack(length)
	for _, f := range frags {
		if f.Start < 1 || f.Start > f.End {
			return nil, errors.E(fmt.Sprintf("aggregate: fragment %s %d-%d has a malformed interval", f.Type, f.Start, f.End))
		}
		if f.End > t.Len() {
			return nil, errors.E(fmt.Sprintf("aggregate: fragment %s %d-%d extends past the genome length %d", f.Type, f.Start, f.End, t.Len()))
		}
		for pos := f.Start; pos <= f.End; pos++ {
			t.counts[pos]++
		}
	}
	return t, nil
}
