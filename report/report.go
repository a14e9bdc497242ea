// Package report writes the retained-fragment table as TSV.
package report

import (
	"context"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"

	"github.com/Cazuya-Nagai/GeneConv-Visualizer/geneconv"
)

// WriteFragments writes frags to path as a TSV table with a header row.
// A path ending in .gz is gzip-compressed.
func WriteFragments(ctx context.Context, path string, frags []geneconv.Fragment) (err error) {
	dst, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "couldn't create fragment report:", path)
	}
	defer file.CloseAndReport(ctx, dst, &err)

	var w io.Writer = dst.Writer(ctx)
	if fileio.DetermineType(path) == fileio.Gzip {
		gz := gzip.NewWriter(w)
		defer func() {
			if e := gz.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = gz
	}
	tw := tsv.NewWriter(w)
	tw.WriteString("type\tbegin\tend\tsim_p\tlength")
	if err = tw.EndLine(); err != nil {
		return errors.E(err, "error writing to fragment report:", path)
	}
	for _, f := range frags {
		tw.WriteString(string(f.Type))
		tw.WriteString(strconv.Itoa(f.Start))
		tw.WriteString(strconv.Itoa(f.End))
		tw.WriteString(strconv.FormatFloat(f.SimP, 'g', -1, 64))
		tw.WriteString(strconv.Itoa(f.Length))
		if err = tw.EndLine(); err != nil {
			return errors.E(err, "error writing to fragment report:", path)
		}
	}
	return tw.Flush()
}
