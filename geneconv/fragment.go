// Package geneconv parses raw GENECONV report text into fragment records.
//
// A GENECONV report is line-oriented and heterogeneous: version banners,
// comment blocks, and column-header text are interleaved with the fragment
// listings proper.  Fragment lines are the ones whose first
// whitespace-delimited field is a listing type (PI, PO, or GI); everything
// else is skipped without complaint.
package geneconv

import (
	"strconv"
	"strings"
)

// Type classifies a GENECONV fragment listing.
type Type string

const (
	// PairwiseInner is an inner fragment from a pairwise comparison: both
	// endpoints fall inside the aligned sequence pair.
	PairwiseInner Type = "PI"
	// PairwiseOuter is an outer-sequence fragment from a pairwise comparison.
	PairwiseOuter Type = "PO"
	// GlobalInner is an inner fragment from the global (all-sequence) test.
	GlobalInner Type = "GI"
)

// Fragment is one gene-conversion tract reported by GENECONV.  Coordinates
// are 1-based and both ends are closed.
type Fragment struct {
	Type   Type
	Start  int
	End    int
	SimP   float64 // simulated p-value
	Length int     // aligned fragment length in bp
}

// GENECONV fragment lines are whitespace-delimited with a fixed column
// order: type, sequence-name pair, simulated p-value, BC KA p-value, begin,
// end, length, then polymorphism/mismatch counts.  Only the columns below
// are consumed.
const (
	fieldType   = 0
	fieldSimP   = 2
	fieldBegin  = 4
	fieldEnd    = 5
	fieldLength = 6

	minFields = 7
)

func parseType(tok string) (Type, bool) {
	switch Type(tok) {
	case PairwiseInner, PairwiseOuter, GlobalInner:
		return Type(tok), true
	}
	return "", false
}

// GENECONV inherits Fortran's scientific notation for small p-values
// (e.g. "4.20D-05").
func parseSimP(tok string) (float64, error) {
	tok = strings.ReplaceAll(tok, "D", "e")
	tok = strings.ReplaceAll(tok, "d", "e")
	return strconv.ParseFloat(tok, 64)
}

// ParseLine classifies line and, if it is a fragment record, extracts it.
// The second return value is false for header/footer/comment lines and for
// candidate lines whose data columns fail to parse; neither case is an
// error.
func ParseLine(line string) (Fragment, bool) {
	fields := strings.Fields(line)
	if len(fields) < minFields {
		return Fragment{}, false
	}
	typ, ok := parseType(fields[fieldType])
	if !ok {
		return Fragment{}, false
	}
	simP, err := parseSimP(fields[fieldSimP])
	if err != nil {
		return Fragment{}, false
	}
	start, err := strconv.Atoi(fields[fieldBegin])
	if err != nil {
		return Fragment{}, false
	}
	end, err := strconv.Atoi(fields[fieldEnd])
	if err != nil {
		return Fragment{}, false
	}
	length, err := strconv.Atoi(fields[fieldLength])
	if err != nil {
		return Fragment{}, false
	}
	return Fragment{
		Type:   typ,
		Start:  start,
		End:    end,
		SimP:   simP,
		Length: length,
	}, true
}
