package interval

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PosType is the integer type used to represent genomic positions.
type PosType int

// ReadInterval is one deduplicated read: the half-open interval
// [Start, End) it covers, weighted by how many times the identical record
// appeared in the input.
type ReadInterval struct {
	Start PosType
	End   PosType
	Mult  int
}

// ParseReadKey parses the raw text of a read record into its interval.  The
// first comma-delimited field is the start coordinate and the second is the
// read length; any further fields are ignored.  (Some pipelines append
// extra columns after the length; those never affect coverage, though they
// do make the record a distinct deduplication key.)  Mult is left zero for
// the caller to fill in.
func ParseReadKey(key string) (ReadInterval, error) {
	fields := strings.Split(key, ",")
	if len(fields) < 2 {
		return ReadInterval{}, errors.Errorf("read record %q: want at least 2 comma-delimited fields, got %d", key, len(fields))
	}
	// Surrounding whitespace is tolerated so that a table written with
	// ", "-separated columns parses back.
	start, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return ReadInterval{}, errors.Errorf("read record %q: invalid start coordinate %q", key, fields[0])
	}
	length, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return ReadInterval{}, errors.Errorf("read record %q: invalid length %q", key, fields[1])
	}
	return ReadInterval{Start: PosType(start), End: PosType(start + length)}, nil
}

// Contains checks whether pos lies within the half-open interval
// [r.Start, r.End).
func (r ReadInterval) Contains(pos PosType) bool {
	return r.Start <= pos && pos < r.End
}
