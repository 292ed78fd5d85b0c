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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/coverage/interval"
	"github.com/pkg/errors"
)

// Locus is a single genomic position of interest together with its
// coverage accumulator.
type Locus struct {
	Pos      interval.PosType
	Coverage int
}

// ReadLoci consumes a loci table: one header line (discarded), then one
// locus per line, with the position in the first comma-delimited field and
// any further fields ignored.  Rows are kept in input order; duplicate
// positions stay separate rows.  Coverage starts at zero for every locus.
func ReadLoci(r io.Reader) ([]Locus, error) {
	scanner := bufio.NewScanner(r)
	if err := skipHeader(scanner, "loci"); err != nil {
		return nil, err
	}
	var loci []Locus
	for lineIdx := 2; scanner.Scan(); lineIdx++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		posStr := line
		if commaPos := strings.IndexByte(line, ','); commaPos != -1 {
			posStr = line[:commaPos]
		}
		pos, err := strconv.Atoi(strings.TrimSpace(posStr))
		if err != nil {
			return nil, errors.Errorf("loci table: invalid position %q on line %d", posStr, lineIdx)
		}
		loci = append(loci, Locus{Pos: interval.PosType(pos)})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read loci table")
	}
	return loci, nil
}

// WriteLoci writes the coverage table: a "position, coverage" header line
// followed by one row per locus, in the order given.  The row format is
// re-readable by ReadLoci.
func WriteLoci(w io.Writer, loci []Locus) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("position, coverage\n"); err != nil {
		return err
	}
	for _, locus := range loci {
		if _, err := fmt.Fprintf(bw, "%d, %d\n", locus.Pos, locus.Coverage); err != nil {
			return err
		}
	}
	return bw.Flush()
}
