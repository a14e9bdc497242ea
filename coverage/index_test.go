package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cazuya-Nagai/GeneConv-Visualizer/geneconv"
)

func TestIndexOverlapping(t *testing.T) {
	frags := []geneconv.Fragment{frag(300, 400), frag(100, 150), frag(120, 170)}
	ix := NewIndex(frags)

	got := ix.Overlapping(Region{Start: 140, End: 310})
	assert.Equal(t, []geneconv.Fragment{frag(100, 150), frag(120, 170), frag(300, 400)}, got)

	// Closed coordinates: a shared endpoint is an overlap.
	got = ix.Overlapping(Region{Start: 150, End: 160})
	assert.Equal(t, []geneconv.Fragment{frag(100, 150), frag(120, 170)}, got)

	got = ix.Overlapping(Region{Start: 171, End: 299})
	assert.Empty(t, got)
}

func TestIndexEmpty(t *testing.T) {
	ix := NewIndex(nil)
	assert.Empty(t, ix.Overlapping(Region{Start: 1, End: 100}))
}
