package geneconv

// Opts control which reported fragments count as significant.
type Opts struct {
	// PThreshold is the maximum simulated p-value for a fragment to be kept.
	PThreshold float64
	// MinLength is the minimum fragment length in bp.  Short tracts are
	// indistinguishable from alignment noise.
	MinLength int
}

// DefaultOpts holds the conventional thresholds for mitogenome duplication
// scans.
var DefaultOpts = Opts{
	PThreshold: 0.05,
	MinLength:  500,
}

// Keep reports whether f passes the significance filter.
func (o Opts) Keep(f Fragment) bool {
	return f.SimP <= o.PThreshold && f.Length >= o.MinLength
}

// Filter returns the subsequence of frags passing o, preserving input order.
// frags is not modified.
func Filter(frags []Fragment, o Opts) []Fragment {
	kept := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if o.Keep(f) {
			kept = append(kept, f)
		}
	}
	return kept
}
