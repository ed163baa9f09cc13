// Package vm implements the Thompson-style, non-backtracking virtual
// machine of spec.md §4.3: two instruction-offset sets (current/next) are
// stepped in lock-step over the input, with a per-instruction
// "last seen generation" dedup that bounds total work to
// O(|input| * |bytecode|).
//
// This is a direct, single-purpose re-expression of
// github.com/coregx/coregex/nfa.PikeVM's queue/nextQueue/visited machinery,
// adapted from NFA states (byte-range/split/epsilon) to this module's
// bytecode opcodes (LITERAL/ANY/JMP/SPLIT/MATCH) and from unanchored
// substring search down to spec.md's whole-string-only contract.
package vm

import (
	"github.com/augustt198/rjit/bytecode"
	"github.com/augustt198/rjit/internal/genset"
)

// Thompson executes a compiled bytecode.Program against input. It owns the
// current/next worklists and their generation sets, so that repeated calls
// to Run reuse the same backing arrays instead of allocating per call — the
// same "pre-allocate to avoid allocations during search" discipline
// nfa.PikeVM follows.
type Thompson struct {
	prog *bytecode.Program

	current    []int
	next       []int
	currentSet *genset.Set
	nextSet    *genset.Set
}

// New creates a Thompson VM for executing prog. prog is not copied; it must
// not be mutated while the VM is in use.
func New(prog *bytecode.Program) *Thompson {
	n := len(prog.Instructions)
	return &Thompson{
		prog:       prog,
		current:    make([]int, 0, n),
		next:       make([]int, 0, n),
		currentSet: genset.New(n),
		nextSet:    genset.New(n),
	}
}

// Run reports whether prog matches input in full: spec.md's whole-string
// contract, "a successful match requires the pattern to consume the entire
// input up to end-of-string."
func Run(prog *bytecode.Program, input string) bool {
	return New(prog).Run(input)
}

// Run executes t's program against input. It may be called repeatedly on
// the same Thompson value with different inputs.
func (t *Thompson) Run(input string) bool {
	n := len(t.prog.Instructions)
	if n == 0 {
		return false
	}

	t.currentSet.Reset()
	t.nextSet.Reset()
	t.current = t.current[:0]
	t.next = t.next[:0]

	var gen int64
	addThread(&t.current, t.currentSet, gen, 0)

	pos := 0
	for {
		if len(t.current) == 0 {
			return false
		}

		atEnd := pos >= len(input)
		matched := false

		// The worklist grows during iteration: OpJmp/OpSplit append more
		// offsets into t.current itself (spec.md §4.3 step 2), so the loop
		// re-reads len(t.current) on every iteration rather than caching it.
		for i := 0; i < len(t.current); i++ {
			pc := t.current[i]
			inst := t.prog.Instructions[pc]

			switch inst.Op {
			case bytecode.OpLiteral:
				if !atEnd && input[pos] == inst.Str[0] {
					addThread(&t.next, t.nextSet, gen+1, pc+1)
				}
			case bytecode.OpAny:
				if !atEnd {
					addThread(&t.next, t.nextSet, gen+1, pc+1)
				}
			case bytecode.OpMatch:
				if atEnd {
					matched = true
				}
			case bytecode.OpJmp:
				addThread(&t.current, t.currentSet, gen, t.prog.Resolve(inst.Label1))
			case bytecode.OpSplit:
				addThread(&t.current, t.currentSet, gen, t.prog.Resolve(inst.Label1))
				addThread(&t.current, t.currentSet, gen, t.prog.Resolve(inst.Label2))
			}
		}

		if matched {
			return true
		}
		if atEnd {
			return false
		}

		t.current, t.next = t.next, t.current[:0]
		t.currentSet, t.nextSet = t.nextSet, t.currentSet
		gen++
		pos++
	}
}

// addThread adds instruction pc to list, deduplicating against set at
// generation: a re-addition at the same generation is a no-op (spec.md
// §3's "Per-instruction 'last seen' history").
func addThread(list *[]int, set *genset.Set, generation int64, pc int) {
	if pc < 0 || pc >= set.Len() {
		return
	}
	if !set.Insert(pc, generation) {
		return
	}
	*list = append(*list, pc)
}
