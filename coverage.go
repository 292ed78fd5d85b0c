// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package coverage computes per-locus sequencing coverage: given a table of
// genomic loci and a table of reads (start coordinate + length), it reports
// for every locus how many reads overlap it, with duplicate read records
// collapsed into multiplicity weights.
//
// A run has three strictly sequential phases: load loci (ReadLoci), load
// and deduplicate reads (NewReadIndex), and annotate (Annotate).  Run wires
// the phases to file I/O and only creates the output file once annotation
// has succeeded, so a malformed input never leaves a partial coverage
// table behind.
package coverage

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Opts defines the optional knobs for a coverage run.
type Opts struct {
	// NoTree forces the brute-force overlap scan instead of the interval
	// tree.  Results are identical either way; the scan is
	// O(loci x unique reads).
	NoTree bool
}

// DefaultOpts is the default option set.
var DefaultOpts = Opts{
	NoTree: false,
}

// Run computes coverage for the loci table at lociPath against the reads
// table at readsPath and writes the resulting coverage table to outPath.
// Inputs with a .gz suffix are decompressed transparently.  Any error is
// fatal to the whole run; no output file is created on failure.
func Run(ctx context.Context, lociPath, readsPath, outPath string, opts *Opts) (err error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	log.Printf("Loading loci from %s", lociPath)
	var loci []Locus
	if err = withInputReader(ctx, lociPath, func(r io.Reader) error {
		var e error
		loci, e = ReadLoci(r)
		return e
	}); err != nil {
		return errors.Wrapf(err, "loci input %s", lociPath)
	}
	log.Printf("%d loci loaded", len(loci))

	log.Printf("Loading reads from %s", readsPath)
	var reads *ReadIndex
	if err = withInputReader(ctx, readsPath, func(r io.Reader) error {
		var e error
		reads, e = NewReadIndex(r)
		return e
	}); err != nil {
		return errors.Wrapf(err, "reads input %s", readsPath)
	}

	log.Printf("Computing coverage")
	if err = Annotate(loci, reads, opts); err != nil {
		return err
	}

	log.Printf("Writing coverage table to %s", outPath)
	var out file.File
	if out, err = file.Create(ctx, outPath); err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	return WriteLoci(out.Writer(ctx), loci)
}

// withInputReader opens path through the base file VFS, transparently
// decompressing gzipped inputs, and passes the resulting reader to fn.
func withInputReader(ctx context.Context, path string, fn func(io.Reader) error) (err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return err
		}
		defer func() {
			if cerr := gz.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		reader = gz
	}
	return fn(reader)
}
