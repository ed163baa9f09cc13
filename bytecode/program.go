package bytecode

import "strings"

// Program is the output of compilation: a flat instruction array plus a
// label table mapping each Label to an instruction offset.
type Program struct {
	Instructions []Instruction
	Labels       []int // Labels[label] = instruction offset
}

// Resolve returns the instruction offset a label addresses.
func (p *Program) Resolve(l Label) int {
	return p.Labels[l]
}

// String renders the program as a debug listing with label annotations,
// e.g.:
//
//	0: SPLIT L0, L1
//	L0:
//	1: LITERAL "a"
//	2: JMP L2
//	L1:
//	3: LITERAL "b"
//	L2:
//	4: MATCH
func (p *Program) String() string {
	var b strings.Builder
	labelsAt := make(map[int][]Label)
	for l, off := range p.Labels {
		labelsAt[off] = append(labelsAt[off], Label(l))
	}
	for i, inst := range p.Instructions {
		for _, l := range labelsAt[i] {
			b.WriteString("L")
			writeInt(&b, int(l))
			b.WriteString(":\n")
		}
		writeInt(&b, i)
		b.WriteString(": ")
		b.WriteString(inst.String())
		b.WriteString("\n")
	}
	return b.String()
}

func writeInt(b *strings.Builder, n int) {
	// Tiny, allocation-free-enough integer formatter so String() doesn't
	// need to import fmt just for offsets.
	if n == 0 {
		b.WriteByte('0')
		return
	}
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	b.Write(digits[i:])
}

// builder accumulates instructions and labels during compilation. It is the
// Go-idiomatic re-expression of the original C source's
// create_label/add_inst pair (spec.md §9): a small object with Add*-style
// methods returning handles, following nfa.Builder's shape.
type builder struct {
	instructions []Instruction
	labels       []int
}

func newBuilder() *builder {
	return &builder{}
}

// label creates a new label addressing the instruction that will be emitted
// next (offset = len(instructions) + extra).
func (b *builder) label(extra int) Label {
	l := Label(len(b.labels))
	b.labels = append(b.labels, len(b.instructions)+extra)
	return l
}

// add appends an instruction and returns its offset.
func (b *builder) add(inst Instruction) int {
	off := len(b.instructions)
	b.instructions = append(b.instructions, inst)
	return off
}

func (b *builder) program() *Program {
	return &Program{Instructions: b.instructions, Labels: b.labels}
}
