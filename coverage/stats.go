package coverage

import "math"

// Region is a 1-based closed genomic interval.
type Region struct {
	Start, End int
}

// Len returns the number of positions in r.
func (r Region) Len() int { return r.End - r.Start + 1 }

// Tail returns the terminal sub-region covering the last n positions of r,
// clamped to r's start.
func (r Region) Tail(n int) Region {
	start := r.End - n + 1
	if start < r.Start {
		start = r.Start
	}
	return Region{Start: start, End: r.End}
}

// Stats summarizes fragment coverage of a duplication region.  The
// percentages are rounded to two decimals for display.
type Stats struct {
	// RegionPct is the percentage of region positions with nonzero coverage.
	RegionPct float64
	// TailPct is the same statistic restricted to the terminal tail of the
	// region.
	TailPct float64
	// MaxDepth is the deepest stacking count anywhere on the track.
	MaxDepth int
}

func coveredPct(t *Track, r Region) float64 {
	if r.Len() <= 0 {
		return 0
	}
	covered := 0
	for pos := r.Start; pos <= r.End; pos++ {
		if t.Depth(pos) > 0 {
			covered++
		}
	}
	pct := 100 * float64(covered) / float64(r.Len())
	return math.Round(pct*100) / 100
}

// RegionStats computes coverage percentages for region and for its last
// tailLen positions.  A track with no covered positions yields zero
// percentages, not an error.
func RegionStats(t *Track, region Region, tailLen int) Stats {
	return Stats{
		RegionPct: coveredPct(t, region),
		TailPct:   coveredPct(t, region.Tail(tailLen)),
		MaxDepth:  t.Max(),
	}
}

// Tracts returns the maximal runs of consecutively covered positions
// (depth > 0), in ascending order.
func Tracts(t *Track) []Region {
	var tracts []Region
	start := 0
	for pos := 1; pos <= t.Len(); pos++ {
		if t.Depth(pos) > 0 {
			if start == 0 {
				start = pos
			}
			continue
		}
		if start != 0 {
			tracts = append(tracts, Region{Start: start, End: pos - 1})
			start = 0
		}
	}
	if start != 0 {
		tracts = append(tracts, Region{Start: start, End: t.Len()})
	}
	return tracts
}
