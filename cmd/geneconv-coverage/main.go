package main

/*
geneconv-coverage renders the stacking coverage of significant GENECONV
gene-conversion fragments across a mitogenome.

It scans a raw GENECONV report for PI/PO/GI fragment listings, keeps the
fragments passing the p-value and minimum-length thresholds, stacks them
into a per-position coverage track, and writes a step-plot figure annotated
with the fraction of the duplication region (and its terminal tail) covered
by at least one fragment.
*/

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/Cazuya-Nagai/GeneConv-Visualizer/coverage"
	"github.com/Cazuya-Nagai/GeneConv-Visualizer/geneconv"
	"github.com/Cazuya-Nagai/GeneConv-Visualizer/render"
	"github.com/Cazuya-Nagai/GeneConv-Visualizer/report"
)

var (
	regionStart  = flag.Int("start", 0, "Duplication region start coordinate (1-based); required")
	regionEnd    = flag.Int("end", 0, "Duplication region end coordinate (1-based, inclusive); required")
	outPath      = flag.String("out", "geneconv_plot.png", "Output image path")
	pThreshold   = flag.Float64("p", geneconv.DefaultOpts.PThreshold, "Maximum simulated p-value for a fragment to be retained")
	minLength    = flag.Int("minlen", geneconv.DefaultOpts.MinLength, "Minimum fragment length in bp")
	tailLen      = flag.Int("tail", render.DefaultOpts.TailLen, "Length of the terminal duplication segment reported separately")
	genomeLength = flag.Int("genome-length", 0, "Total mitogenome length; 0 infers it from the maximum fragment end position")
	tsvOut       = flag.String("tsv-out", "", "Optional TSV path for the retained-fragment table; .gz paths are compressed")
)

func coverageUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] geneconvpath\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = coverageUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Exactly one positional argument (GENECONV output path) expected; please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
	}
	if *regionStart < 1 || *regionEnd < *regionStart {
		log.Fatalf("-start and -end must describe a nonempty 1-based region (got %d-%d)", *regionStart, *regionEnd)
	}
	ctx := vcontext.Background()
	inputPath := flag.Arg(0)

	frags, err := geneconv.ReadFragments(ctx, inputPath)
	if err != nil {
		log.Fatalf("%s: %v", inputPath, err)
	}
	opts := geneconv.Opts{PThreshold: *pThreshold, MinLength: *minLength}
	kept := geneconv.Filter(frags, opts)
	if len(kept) == 0 {
		log.Error.Printf("no fragments passed the significance filter (p <= %g, length >= %d bp); the figure will show flat zero coverage", opts.PThreshold, opts.MinLength)
	}

	track, err := coverage.Aggregate(kept, *genomeLength)
	if err != nil {
		log.Fatalf("%s: %v", inputPath, err)
	}
	region := coverage.Region{Start: *regionStart, End: *regionEnd}
	stats := coverage.RegionStats(track, region, *tailLen)
	overlapping := coverage.NewIndex(kept).Overlapping(region)
	log.Printf("%d/%d fragments retained, %d overlapping %d-%d, %d distinct covered tracts; region %.2f%% covered, last %d bp %.2f%% covered, max depth %d",
		len(kept), len(frags), len(overlapping), region.Start, region.End, len(coverage.Tracts(track)),
		stats.RegionPct, *tailLen, stats.TailPct, stats.MaxDepth)

	if *tsvOut != "" {
		if err := report.WriteFragments(ctx, *tsvOut, kept); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("fragment table written to %s", *tsvOut)
	}

	ropts := render.DefaultOpts
	ropts.TailLen = *tailLen
	plt, err := render.CoveragePlot(track, region, stats, ropts)
	if err != nil {
		log.Fatalf("building figure: %v", err)
	}
	if err := render.WritePNG(plt, *outPath, ropts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("figure written to %s", *outPath)
}
