package coverage

import (
	"sort"

	"github.com/biogo/store/interval"

	"github.com/Cazuya-Nagai/GeneConv-Visualizer/geneconv"
)

// fragInterval adapts a retained fragment to the biogo interval-tree
// interface.  Coordinates are closed, so touching endpoints count as
// overlap.
type fragInterval struct {
	frag geneconv.Fragment
	id   uintptr
}

func (iv fragInterval) Overlap(b interval.IntRange) bool {
	return iv.frag.Start <= b.End && iv.frag.End >= b.Start
}

func (iv fragInterval) Range() interval.IntRange {
	return interval.IntRange{Start: iv.frag.Start, End: iv.frag.End}
}

func (iv fragInterval) ID() uintptr { return iv.id }

// Index answers overlap queries against a retained-fragment set.
type Index struct {
	tree interval.IntTree
}

// NewIndex builds an interval tree over frags.
func NewIndex(frags []geneconv.Fragment) *Index {
	ix := &Index{}
	for i, f := range frags {
		// Insert cannot fail with distinct IDs.
		_ = ix.tree.Insert(fragInterval{frag: f, id: uintptr(i)}, true)
	}
	ix.tree.AdjustRanges()
	return ix
}

// Overlapping returns the fragments intersecting r, sorted by start
// position.
func (ix *Index) Overlapping(r Region) []geneconv.Fragment {
	var out []geneconv.Fragment
	ix.tree.DoMatching(func(e interval.IntInterface) (done bool) {
		out = append(out, e.(fragInterval).frag)
		return
	}, fragInterval{frag: geneconv.Fragment{Start: r.Start, End: r.End}})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}
