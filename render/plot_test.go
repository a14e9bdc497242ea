package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"gonum.org/v1/plot/vg"

	"github.com/Cazuya-Nagai/GeneConv-Visualizer/coverage"
	"github.com/Cazuya-Nagai/GeneConv-Visualizer/geneconv"
)

func testOpts() Opts {
	return Opts{Width: 4 * vg.Inch, Height: 2 * vg.Inch, DPI: 72, TailLen: 50}
}

func testTrack(t *testing.T, frags []geneconv.Fragment) *coverage.Track {
	track, err := coverage.Aggregate(frags, 0)
	assert.NoError(t, err)
	return track
}

func TestWritePNG(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	frags := []geneconv.Fragment{
		{Type: geneconv.GlobalInner, Start: 100, End: 200, SimP: 0.01, Length: 101},
		{Type: geneconv.PairwiseInner, Start: 150, End: 320, SimP: 0.002, Length: 171},
	}
	track := testTrack(t, frags)
	region := coverage.Region{Start: 50, End: 250}
	opts := testOpts()
	stats := coverage.RegionStats(track, region, opts.TailLen)

	p, err := CoveragePlot(track, region, stats, opts)
	assert.NoError(t, err)

	path := filepath.Join(tempDir, "coverage.png")
	assert.NoError(t, WritePNG(p, path, opts))
	info, err := os.Stat(path)
	assert.NoError(t, err)
	expect.True(t, info.Size() > 0)

	// Overwriting an existing figure is silent.
	assert.NoError(t, WritePNG(p, path, opts))
}

func TestCoveragePlotEmptyTrack(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	track := testTrack(t, nil)
	region := coverage.Region{Start: 50, End: 250}
	opts := testOpts()
	stats := coverage.RegionStats(track, region, opts.TailLen)

	// No retained fragments still produces a (flat) figure.
	p, err := CoveragePlot(track, region, stats, opts)
	assert.NoError(t, err)
	path := filepath.Join(tempDir, "empty.png")
	assert.NoError(t, WritePNG(p, path, opts))
	info, err := os.Stat(path)
	assert.NoError(t, err)
	expect.True(t, info.Size() > 0)
}
