package arm64

import (
	"fmt"
	"strings"

	"github.com/augustt198/rjit/bytecode"
)

// AssemblyText renders prog as AArch64 assembly source implementing the
// same two-buffer Thompson simulation as package vm, ready to be handed to
// Assemble. It is a direct, line-for-line port of
// original_source/vm2arm.c's vm2arm, generalized from that function's
// fprintf-to-a-file style to building a string. It keeps the original's
// null-terminated input convention: the loop ends on a NUL byte, so the
// caller must pass a NUL-terminated buffer (Load's MatchFn does so).
func AssemblyText(prog *bytecode.Program) string {
	var b strings.Builder
	n := len(prog.Instructions)

	spSub := 16 + 3*8*n
	spSub += 16 - (spSub % 16) // keep SP 16-byte aligned

	fmt.Fprintf(&b, "_matchit:\n")

	fmt.Fprintf(&b, "sub sp, sp, #%d\n", spSub)
	fmt.Fprintf(&b, "str x29, [sp, #%d]\n", spSub-16)
	fmt.Fprintf(&b, "str x30, [sp, #%d]\n", spSub-8)

	fmt.Fprintf(&b, "mov x5, x0\n")  // REG_SPTR <- subject pointer (arg 0)
	fmt.Fprintf(&b, "mov x0, #0\n")  // result defaults to no-match
	fmt.Fprintf(&b, "mov x6, #0\n")  // REG_SIDX <- 0
	fmt.Fprintf(&b, "mov x8, sp\n")  // REG_CURR_BASE
	fmt.Fprintf(&b, "mov x10, #0\n") // REG_CURR_IDX
	fmt.Fprintf(&b, "mov x9, #1\n")  // REG_CURR_LEN
	fmt.Fprintf(&b, "mov x12, sp\n") // REG_NEXT_BASE
	fmt.Fprintf(&b, "add x12, x12, #%d\n", 8*n)
	fmt.Fprintf(&b, "mov x13, #0\n") // REG_NEXT_IDX
	fmt.Fprintf(&b, "mov x14, sp\n") // REG_HIST_BASE
	fmt.Fprintf(&b, "add x14, x14, #%d\n", 2*8*n)

	// zero the history array
	fmt.Fprintf(&b, "mov x4, #0\n")
	fmt.Fprintf(&b, "zero_hist_loop:\n")
	fmt.Fprintf(&b, "mov x3, #-1\n")
	fmt.Fprintf(&b, "str x3, [x14, x4, sxtx #3]\n")
	fmt.Fprintf(&b, "add x4, x4, #1\n")
	fmt.Fprintf(&b, "cmp x4, #%d\n", n)
	fmt.Fprintf(&b, "b.lt zero_hist_loop\n")

	// seed the current array with instruction 0
	fmt.Fprintf(&b, "adr x4, bytecode_inst_0\n")
	fmt.Fprintf(&b, "str x4, [x8]\n")

	fmt.Fprintf(&b, "the_loop:\n")
	// REG_CHAR <- subject[idx]; the loader NUL-terminates the subject
	// buffer so this reads 0 exactly one byte past the input, the same
	// end-of-string signal original_source/rjit.c relies on for C strings.
	fmt.Fprintf(&b, "ldrb w7, [x5, x6]\n")
	fmt.Fprintf(&b, "cmp x9, #0\n")
	fmt.Fprintf(&b, "b.eq FIN\n")

	fmt.Fprintf(&b, "loop_inner:\n")
	fmt.Fprintf(&b, "ldr x11, [x8, x10, sxtx #3]\n")
	fmt.Fprintf(&b, "br x11\n")
	fmt.Fprintf(&b, "bytecode_instr_done:\n")
	fmt.Fprintf(&b, "add x10, x10, #1\n")
	fmt.Fprintf(&b, "cmp x10, x9\n")
	fmt.Fprintf(&b, "b.lt loop_inner\n")

	fmt.Fprintf(&b, "mov x4, x8\n")
	fmt.Fprintf(&b, "mov x8, x12\n")
	fmt.Fprintf(&b, "mov x12, x4\n")

	fmt.Fprintf(&b, "mov x10, #0\n")
	fmt.Fprintf(&b, "mov x9, x13\n")
	fmt.Fprintf(&b, "mov x13, #0\n")

	fmt.Fprintf(&b, "add x6, x6, #1\n")
	fmt.Fprintf(&b, "cmp x7, #0\n")
	fmt.Fprintf(&b, "b.ne the_loop\n")
	fmt.Fprintf(&b, "b FIN\n")

	for idx, inst := range prog.Instructions {
		for l, off := range prog.Labels {
			if off == idx {
				fmt.Fprintf(&b, "RL_%d:\n", l)
			}
		}
		fmt.Fprintf(&b, "bytecode_inst_%d:\n", idx)

		switch inst.Op {
		case bytecode.OpLiteral, bytecode.OpAny:
			if inst.Op == bytecode.OpLiteral {
				fmt.Fprintf(&b, "cmp w7, #%d\n", int(inst.Str[0]))
				fmt.Fprintf(&b, "b.ne bytecode_instr_done\n")
			}
			fmt.Fprintf(&b, "ldrh w4, [x14, #%d]\n", (idx+1)*8+4)
			fmt.Fprintf(&b, "cmp x4, x6\n")
			fmt.Fprintf(&b, "b.eq bytecode_instr_done\n")
			fmt.Fprintf(&b, "strh w6, [x14, #%d]\n", (idx+1)*8+4)
			fmt.Fprintf(&b, "adr x4, bytecode_inst_%d\n", idx+1)
			fmt.Fprintf(&b, "str x4, [x12, x13, sxtx #3]\n")
			fmt.Fprintf(&b, "add x13, x13, #1\n")
			fmt.Fprintf(&b, "b bytecode_instr_done\n")

		case bytecode.OpMatch:
			fmt.Fprintf(&b, "cbz w7, MATCH\n")
			fmt.Fprintf(&b, "b bytecode_instr_done\n")

		case bytecode.OpJmp:
			jmpPC := prog.Resolve(inst.Label1)
			fmt.Fprintf(&b, "ldrh w4, [x14, #%d]\n", jmpPC*8)
			fmt.Fprintf(&b, "cmp x4, x6\n")
			fmt.Fprintf(&b, "b.eq bytecode_instr_done\n")
			fmt.Fprintf(&b, "strh w6, [x14, #%d]\n", jmpPC*8)
			fmt.Fprintf(&b, "adr x4, bytecode_inst_%d\n", jmpPC)
			fmt.Fprintf(&b, "str x4, [x8, x9, sxtx #3]\n")
			fmt.Fprintf(&b, "add x9, x9, #1\n")
			fmt.Fprintf(&b, "b bytecode_instr_done\n")

		case bytecode.OpSplit:
			pc1 := prog.Resolve(inst.Label1)
			pc2 := prog.Resolve(inst.Label2)

			fmt.Fprintf(&b, "ldrh w4, [x14, #%d]\n", pc1*8)
			fmt.Fprintf(&b, "cmp x4, x6\n")
			fmt.Fprintf(&b, "b.eq split_part2_for_%d\n", idx)
			fmt.Fprintf(&b, "strh w6, [x14, #%d]\n", pc1*8)
			fmt.Fprintf(&b, "adr x4, bytecode_inst_%d\n", pc1)
			fmt.Fprintf(&b, "str x4, [x8, x9, sxtx #3]\n")
			fmt.Fprintf(&b, "add x9, x9, #1\n")

			fmt.Fprintf(&b, "split_part2_for_%d:\n", idx)

			fmt.Fprintf(&b, "ldrh w4, [x14, #%d]\n", pc2*8)
			fmt.Fprintf(&b, "cmp x4, x6\n")
			fmt.Fprintf(&b, "b.eq bytecode_instr_done\n")
			fmt.Fprintf(&b, "strh w6, [x14, #%d]\n", pc2*8)
			fmt.Fprintf(&b, "adr x4, bytecode_inst_%d\n", pc2)
			fmt.Fprintf(&b, "str x4, [x8, x9, sxtx #3]\n")
			fmt.Fprintf(&b, "add x9, x9, #1\n")
			fmt.Fprintf(&b, "b bytecode_instr_done\n")
		}
	}

	fmt.Fprintf(&b, "MATCH:\n")
	fmt.Fprintf(&b, "mov x0, #1\n")

	fmt.Fprintf(&b, "FIN:\n")
	fmt.Fprintf(&b, "ldr x29, [sp, #%d]\n", spSub-16)
	fmt.Fprintf(&b, "ldr x30, [sp, #%d]\n", spSub-8)
	fmt.Fprintf(&b, "add sp, sp, #%d\n", spSub)
	fmt.Fprintf(&b, "ret\n")

	return b.String()
}
