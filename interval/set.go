package interval

import (
	biogointerval "github.com/biogo/store/interval"
)

// entry adapts a ReadInterval to biogo's integer interval-tree interface.
type entry struct {
	ReadInterval
	id uintptr
}

func (e entry) Overlap(b biogointerval.IntRange) bool {
	// Half-open interval indexing.
	return int(e.End) > b.Start && int(e.Start) < b.End
}

func (e entry) ID() uintptr { return e.id }

func (e entry) Range() biogointerval.IntRange {
	return biogointerval.IntRange{Start: int(e.Start), End: int(e.End)}
}

// Set is a multiplicity-weighted collection of read intervals supporting
// point-coverage queries.  It exists purely as an accelerator: Coverage
// returns exactly the sum a linear scan with Contains would produce.
// Empty and negative-length intervals are dropped at insertion since they
// cannot contain any position.
type Set struct {
	tree biogointerval.IntTree
	n    int
}

// Insert adds one weighted interval to the set.  Index must be called
// after the last Insert and before the first Coverage query.
func (s *Set) Insert(r ReadInterval) error {
	if r.End <= r.Start {
		return nil
	}
	s.n++
	return s.tree.Insert(entry{ReadInterval: r, id: uintptr(s.n)}, true)
}

// Index finalizes the tree after a batch of fast Inserts.
func (s *Set) Index() {
	s.tree.AdjustRanges()
}

// Coverage returns the sum of multiplicities of all intervals containing
// pos.
func (s *Set) Coverage(pos PosType) int {
	q := entry{ReadInterval: ReadInterval{Start: pos, End: pos + 1}}
	total := 0
	s.tree.DoMatching(func(iv biogointerval.IntInterface) bool {
		total += iv.(entry).Mult
		return false
	}, q)
	return total
}

// Len returns the number of stored (nonempty) intervals.
func (s *Set) Len() int { return s.n }
