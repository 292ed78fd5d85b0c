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
package coverage

import (
	"github.com/grailbio/coverage/interval"
	"github.com/pkg/errors"
)

// Annotate adds, to every locus, the multiplicities of all read intervals
// containing its position.  Each unique key is parsed exactly once per
// run.  Coverage accumulators are assumed to start at zero; Annotate must
// not be re-invoked on already-annotated loci.
//
// The first malformed key aborts annotation with an error.  Coverage
// values may then be partially updated in memory, so callers must not
// serialize them (Run only writes output after Annotate succeeds).
func Annotate(loci []Locus, reads *ReadIndex, opts *Opts) error {
	if opts == nil {
		opts = &DefaultOpts
	}
	intervals, err := parseIntervals(reads)
	if err != nil {
		return err
	}
	if opts.NoTree {
		annotateScan(loci, intervals)
		return nil
	}
	var set interval.Set
	for _, r := range intervals {
		if err := set.Insert(r); err != nil {
			return errors.Wrap(err, "couldn't index read intervals")
		}
	}
	set.Index()
	for i := range loci {
		loci[i].Coverage += set.Coverage(loci[i].Pos)
	}
	return nil
}

// parseIntervals converts the deduplicated keys into weighted intervals.
func parseIntervals(reads *ReadIndex) ([]interval.ReadInterval, error) {
	intervals := make([]interval.ReadInterval, 0, reads.Len())
	var firstErr error
	reads.Each(func(key string, mult int) {
		if firstErr != nil {
			return
		}
		r, err := interval.ParseReadKey(key)
		if err != nil {
			firstErr = err
			return
		}
		r.Mult = mult
		intervals = append(intervals, r)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return intervals, nil
}

// annotateScan is the reference double loop: every interval is tested
// against every locus.  Kept both as the NoTree execution path and as the
// oracle the indexed path is checked against in tests.
func annotateScan(loci []Locus, intervals []interval.ReadInterval) {
	for i := range loci {
		for _, r := range intervals {
			if r.Contains(loci[i].Pos) {
				loci[i].Coverage += r.Mult
			}
		}
	}
}
