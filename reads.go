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
	"bufio"
	"io"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// ReadIndex is a deduplicated multiset of read records.  The key is the
// literal text of a record line (trailing line terminator stripped); two
// records are the same read iff their raw text is identical, so a record
// with extra trailing columns is a distinct key even when its coordinates
// match another record's.  Values count how many times each key appeared.
type ReadIndex struct {
	mult       map[string]int
	numRecords int
}

// NewReadIndex consumes a reads table: one header line (discarded), then
// one read record per line.  Records are treated as opaque keys here; a
// malformed record only surfaces when its coordinates are parsed during
// annotation.
func NewReadIndex(r io.Reader) (*ReadIndex, error) {
	scanner := bufio.NewScanner(r)
	if err := skipHeader(scanner, "reads"); err != nil {
		return nil, err
	}
	idx := &ReadIndex{mult: make(map[string]int)}
	for scanner.Scan() {
		key := strings.TrimSuffix(scanner.Text(), "\r")
		idx.numRecords++
		idx.mult[key]++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read reads table")
	}
	log.Printf("%d records read, %d unique", idx.numRecords, len(idx.mult))
	return idx, nil
}

// Mult returns how many times key appeared in the input, or 0 if it never
// did.  The returned value is >= 1 for every key the index stores.
func (idx *ReadIndex) Mult(key string) int { return idx.mult[key] }

// Len returns the number of unique records.
func (idx *ReadIndex) Len() int { return len(idx.mult) }

// NumRecords returns the total number of records consumed, duplicates
// included.
func (idx *ReadIndex) NumRecords() int { return idx.numRecords }

// Each calls fn for every unique record and its multiplicity, in
// unspecified order.
func (idx *ReadIndex) Each(fn func(key string, mult int)) {
	for key, mult := range idx.mult {
		fn(key, mult)
	}
}

// skipHeader consumes the single header line every input table starts
// with.  A table with no header line at all is malformed.
func skipHeader(scanner *bufio.Scanner, role string) error {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return errors.Wrapf(err, "couldn't read %s table", role)
		}
		return errors.Errorf("%s table: missing header line", role)
	}
	return nil
}
