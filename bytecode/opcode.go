// Package bytecode lowers a normalized ast.Node into the linear,
// label-addressed instruction stream spec.md §3-§4.2 describes, for
// execution by package vm or translation by package jit/arm64.
package bytecode

import "fmt"

// Op identifies a bytecode instruction's operation.
type Op uint8

const (
	// OpLiteral consumes one input byte equal to Str[0]. The compiler always
	// emits Len == 1; the VM and the AArch64 backend read only Str[0].
	OpLiteral Op = iota
	// OpAny consumes one non-null byte.
	OpAny
	// OpJmp transfers control to the instruction addressed by Label1.
	OpJmp
	// OpSplit spawns two threads, one at Label1 and one at Label2.
	OpSplit
	// OpMatch succeeds if the input is fully consumed (current byte is the
	// terminating null).
	OpMatch
)

func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "LITERAL"
	case OpAny:
		return "ANY"
	case OpJmp:
		return "JMP"
	case OpSplit:
		return "SPLIT"
	case OpMatch:
		return "MATCH"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Label is an integer handle assigned during emission, resolved through a
// Program's label table to an instruction offset. It exists so forward
// branches (e.g. the JMP past an alternation's first branch) can be emitted
// before their target offset is known.
type Label int

// Instruction is one entry of a bytecode Program.
//
// Only the fields relevant to Op are meaningful:
//
//	OpLiteral: Str, Len
//	OpAny:     (none)
//	OpJmp:     Label1
//	OpSplit:   Label1, Label2
//	OpMatch:   (none)
type Instruction struct {
	Op Op

	// OpLiteral payload: match Str[0:Len].
	Str string
	Len int

	// OpJmp / OpSplit payload.
	Label1 Label
	Label2 Label
}

func (in Instruction) String() string {
	switch in.Op {
	case OpLiteral:
		return fmt.Sprintf("LITERAL %q", in.Str[:in.Len])
	case OpJmp:
		return fmt.Sprintf("JMP L%d", in.Label1)
	case OpSplit:
		return fmt.Sprintf("SPLIT L%d, L%d", in.Label1, in.Label2)
	default:
		return in.Op.String()
	}
}
