package geneconv

import (
	"bufio"
	"context"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// ReadFragments scans the GENECONV report at path and returns its fragment
// records in input order.  Gzipped reports are decompressed transparently
// based on the path suffix.  A report with no fragment records yields an
// empty slice, not an error.
func ReadFragments(ctx context.Context, path string) ([]Fragment, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	// Closing the decompressor is what reports a corrupt gzip stream.
	uncompressed, _ := compress.NewReaderPath(in.Reader(ctx), in.Name())
	var frags []Fragment
	scanner := bufio.NewScanner(bufio.NewReaderSize(uncompressed, 64<<10))
	for scanner.Scan() {
		if f, ok := ParseLine(scanner.Text()); ok {
			frags = append(frags, f)
		}
	}
	err = scanner.Err()
	if e := uncompressed.Close(); e != nil && err == nil {
		err = e
	}
	if e := in.Close(ctx); e != nil && err == nil {
		err = e
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: reading GENECONV report", path)
	}
	log.Debug.Printf("%s: %d fragment records", path, len(frags))
	return frags, nil
}
