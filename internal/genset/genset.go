// Package genset provides a generation-stamped membership set: the
// "per-instruction last seen history" spec.md §3 describes as what makes
// Thompson VM execution linear time.
//
// Unlike a set that must be cleared between uses (github.com/coregx/coregex's
// internal/sparse.SparseSet, which this package's dense/sparse naming is
// adapted from), a Set here is never cleared. Each slot instead records the
// generation at which it was last inserted; Insert is a no-op if the slot
// already carries the current generation. This lets a single Set serve
// every step of a VM run without per-step reinitialization cost.
package genset

// Set tracks, for each of n slots, the most recent generation at which it
// was inserted.
type Set struct {
	gen   []int64
	dense []uint32
}

// sentinel is a generation no real call to Insert will ever use.
const sentinel = -1

// New creates a Set over n slots (e.g. one per bytecode instruction),
// with every slot initialized to a generation no real call will match.
func New(n int) *Set {
	gen := make([]int64, n)
	for i := range gen {
		gen[i] = sentinel
	}
	return &Set{gen: gen}
}

// Contains reports whether slot was inserted at generation.
func (s *Set) Contains(slot int, generation int64) bool {
	return s.gen[slot] == generation
}

// Insert records slot as present at generation. If slot was already present
// at that generation, this is a no-op and Insert reports false; otherwise
// it records the new generation and reports true.
func (s *Set) Insert(slot int, generation int64) bool {
	if s.gen[slot] == generation {
		return false
	}
	s.gen[slot] = generation
	s.dense = append(s.dense, uint32(slot))
	return true
}

// Reset restores every slot to its initial "never inserted" state and
// clears the dense worklist, without reallocating the backing arrays. Use
// this to reuse a Set across independent VM runs.
func (s *Set) Reset() {
	for i := range s.gen {
		s.gen[i] = sentinel
	}
	s.dense = s.dense[:0]
}

// ResetDense clears the record of which slots were touched without
// disturbing the per-slot generation stamps, so callers can reuse the dense
// list as a per-step scratch worklist.
func (s *Set) ResetDense() {
	s.dense = s.dense[:0]
}

// Dense returns the slots inserted since the last ResetDense, in insertion
// order. The returned slice is valid until the next Insert or ResetDense.
func (s *Set) Dense() []uint32 {
	return s.dense
}

// Len returns the number of slots the set was created with.
func (s *Set) Len() int {
	return len(s.gen)
}
