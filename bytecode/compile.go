package bytecode

import (
	"errors"
	"fmt"

	"github.com/augustt198/rjit/ast"
)

// ErrUnsupportedRepeat indicates a Repeat node whose (Min, Max) bounds are
// not one of the three supported quantifiers: (0,1), (0,Unbounded), or
// (1,Unbounded). The parser never produces any other bounds, so this
// indicates a hand-built or corrupted AST.
var ErrUnsupportedRepeat = errors.New("unsupported repeat bounds")

// ErrCapacityExceeded indicates the program grew past the Compiler's
// configured instruction limit.
var ErrCapacityExceeded = errors.New("bytecode capacity exceeded")

// CompileError wraps a failure to lower an AST into bytecode.
type CompileError struct {
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("bytecode compile error: %v", e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compiler lowers a normalized ast.Node into a Program, per the emission
// rules of spec.md §4.2.
type Compiler struct {
	// MaxInstructions bounds the emitted program size. Zero means
	// unbounded. Exceeding it produces ErrCapacityExceeded.
	MaxInstructions int

	b *builder
}

// NewCompiler creates a Compiler with the given instruction cap (0 = no
// cap).
func NewCompiler(maxInstructions int) *Compiler {
	return &Compiler{MaxInstructions: maxInstructions}
}

// Compile lowers root into a bytecode Program, appending a trailing MATCH
// instruction after the root's emission as spec.md §4.2 requires.
func Compile(root *ast.Node) (*Program, error) {
	return NewCompiler(0).Compile(root)
}

// Compile lowers root using c's configured limits.
func (c *Compiler) Compile(root *ast.Node) (*Program, error) {
	c.b = newBuilder()
	if err := c.emit(root); err != nil {
		return nil, &CompileError{Err: err}
	}
	if err := c.checkCapacity(); err != nil {
		return nil, &CompileError{Err: err}
	}
	c.b.add(Instruction{Op: OpMatch})
	if err := c.checkCapacity(); err != nil {
		return nil, &CompileError{Err: err}
	}
	return c.b.program(), nil
}

func (c *Compiler) checkCapacity() error {
	if c.MaxInstructions > 0 && len(c.b.instructions) > c.MaxInstructions {
		return ErrCapacityExceeded
	}
	return nil
}

func (c *Compiler) emit(n *ast.Node) error {
	switch n.Kind {
	case ast.KindLiteral:
		// Resolved Open Question (spec.md §9): a compressed literal of
		// length n is lowered into a chain of n length-1 LITERAL
		// instructions rather than a single bulk n-byte instruction. This
		// keeps both the VM (one input byte consumed per generation) and
		// the AArch64 backend (one micro-routine per byte, spec.md §4.4)
		// uniform: every LITERAL instruction the rest of the pipeline
		// ever sees matches exactly one byte.
		bytes := n.Bytes()
		for i := 0; i < len(bytes); i++ {
			c.b.add(Instruction{Op: OpLiteral, Str: bytes[i : i+1], Len: 1})
		}
		return nil

	case ast.KindAny:
		c.b.add(Instruction{Op: OpAny})
		return nil

	case ast.KindSequence:
		for _, child := range n.Children {
			if err := c.emit(child); err != nil {
				return err
			}
		}
		return nil

	case ast.KindAlternate:
		return c.emitAlternate(n)

	case ast.KindRepeat:
		return c.emitRepeat(n)

	default:
		return fmt.Errorf("bytecode: unhandled node kind %v", n.Kind)
	}
}

// emitAlternate implements:
//
//	     SPLIT L_a, L_b
//	L_a: <emit a>
//	     JMP L_end
//	L_b: <emit b>
//	L_end:
func (c *Compiler) emitAlternate(n *ast.Node) error {
	splitIdx := c.b.add(Instruction{Op: OpSplit})

	labelA := c.b.label(0)
	if err := c.emit(n.Children[0]); err != nil {
		return err
	}

	jmpIdx := c.b.add(Instruction{Op: OpJmp})

	labelB := c.b.label(0)
	if err := c.emit(n.Children[1]); err != nil {
		return err
	}

	labelEnd := c.b.label(0)

	c.b.instructions[splitIdx].Label1 = labelA
	c.b.instructions[splitIdx].Label2 = labelB
	c.b.instructions[jmpIdx].Label1 = labelEnd
	return nil
}

func (c *Compiler) emitRepeat(n *ast.Node) error {
	child := n.Children[0]
	switch {
	case n.Min == 0 && n.Max == 1:
		return c.emitOptional(child)
	case n.Min == 0 && n.Max == ast.Unbounded:
		return c.emitStar(child)
	case n.Min == 1 && n.Max == ast.Unbounded:
		return c.emitPlus(child)
	default:
		return fmt.Errorf("%w: (%d, %d)", ErrUnsupportedRepeat, n.Min, n.Max)
	}
}

// emitOptional implements '?':
//
//	     SPLIT L_in, L_out
//	L_in:<emit child>
//	L_out:
func (c *Compiler) emitOptional(child *ast.Node) error {
	splitIdx := c.b.add(Instruction{Op: OpSplit})

	labelIn := c.b.label(0)
	if err := c.emit(child); err != nil {
		return err
	}
	labelOut := c.b.label(0)

	c.b.instructions[splitIdx].Label1 = labelIn
	c.b.instructions[splitIdx].Label2 = labelOut
	return nil
}

// emitStar implements '*':
//
//	L_top: SPLIT L_in, L_out
//	L_in:  <emit child>
//	       JMP L_top
//	L_out:
func (c *Compiler) emitStar(child *ast.Node) error {
	labelTop := c.b.label(0)
	splitIdx := c.b.add(Instruction{Op: OpSplit})

	labelIn := c.b.label(0)
	if err := c.emit(child); err != nil {
		return err
	}

	jmpIdx := c.b.add(Instruction{Op: OpJmp})
	c.b.instructions[jmpIdx].Label1 = labelTop

	labelOut := c.b.label(0)

	c.b.instructions[splitIdx].Label1 = labelIn
	c.b.instructions[splitIdx].Label2 = labelOut
	return nil
}

// emitPlus implements '+':
//
//	L_top: <emit child>
//	       SPLIT L_top, L_out
//	L_out:
func (c *Compiler) emitPlus(child *ast.Node) error {
	labelTop := c.b.label(0)
	if err := c.emit(child); err != nil {
		return err
	}

	splitIdx := c.b.add(Instruction{Op: OpSplit})
	labelOut := c.b.label(0)

	c.b.instructions[splitIdx].Label1 = labelTop
	c.b.instructions[splitIdx].Label2 = labelOut
	return nil
}
