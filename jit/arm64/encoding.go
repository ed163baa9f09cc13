// Package arm64 implements the optional AArch64 JIT backend: it turns a
// compiled bytecode.Program into runnable machine code and executes it
// directly, bypassing the Thompson VM's per-instruction interpretation
// overhead.
package arm64

// Reg is an AArch64 general-purpose register number (0-30, or 31 for the
// stack pointer in instruction classes where that encoding is legal).
type Reg uint32

// Register assignments, carried over field-for-field from
// original_source/vm2arm.c's REG_* macros.
const (
	RegTmp2     Reg = 3  // x3
	RegTmp      Reg = 4  // x4 / w4
	RegSptr     Reg = 5  // x5: base pointer to the subject string
	RegSidx     Reg = 6  // x6 / w6: byte offset into the subject string
	RegChar     Reg = 7  // x7 / w7: the current input byte
	RegCurrBase Reg = 8  // x8: base of the "current" thread-offset array
	RegCurrLen  Reg = 9  // x9: number of live entries in "current"
	RegCurrIdx  Reg = 10 // x10: index of the thread being stepped
	RegRunPC    Reg = 11 // x11: address of the micro-routine being run

	RegNextBase Reg = 12 // x12: base of the "next" thread-offset array
	RegNextIdx  Reg = 13 // x13: number of live entries in "next"
	RegHistBase Reg = 14 // x14: base of the per-instruction generation history

	RegSP Reg = 31 // stack pointer, in instruction classes where 31 means SP
)

// Condition codes, carried over from vm2arm.c's COND_* macros.
const (
	CondEQ uint32 = 0b0000
	CondNE uint32 = 0b0001
	CondGE uint32 = 0b1010
	CondLT uint32 = 0b1011
	CondGT uint32 = 0b1100
	CondLE uint32 = 0b1101
)

// The following encoders are ported bit-for-bit from vm2arm.c's
// arm_ldr_reg/arm_add_reg/arm_add_imm/arm_sub_reg/arm_sub_imm/arm_b_cond/
// arm_b. They are retained as primitives rather than assembled into a
// complete direct-encoding backend: original_source/rjit.c never calls its
// own C equivalents (insert(), arm_program_t) either — its only working
// JIT path writes assembly text and hands it to an external assembler (see
// Assemble in toolchain.go). AssemblyText is this package's corresponding
// real code path; these encoders exist for callers that want to hand-place
// a handful of instructions without round-tripping through an assembler.

// Ldr encodes "ldr Xdest, [Xbase, Xoffset, sxtx #3]".
func Ldr(base, offset, dest Reg) uint32 {
	return 0xf860f800 | (uint32(base) << 5) | (uint32(offset) << 16) | uint32(dest)
}

// AddReg encodes "add Xdest, Xa, Xb".
func AddReg(a, b, dest Reg) uint32 {
	return 0x8b000000 | (uint32(a) << 5) | (uint32(b) << 16) | uint32(dest)
}

// AddImm encodes "add Xdest, Xa, #imm".
func AddImm(a Reg, imm int, dest Reg) uint32 {
	return 0x91000000 | (uint32(a) << 5) | (uint32(imm) << 10) | uint32(dest)
}

// SubReg encodes "sub Xdest, Xa, Xb".
func SubReg(a, b, dest Reg) uint32 {
	return 0xcb000000 | (uint32(a) << 5) | (uint32(b) << 16) | uint32(dest)
}

// SubImm encodes "sub Xdest, Xa, #imm".
func SubImm(a Reg, imm int, dest Reg) uint32 {
	return 0xd1000000 | (uint32(a) << 5) | (uint32(imm) << 10) | uint32(dest)
}

// BCond encodes "b.cond label", where label is the branch target expressed
// as a signed word offset from this instruction (not a byte offset).
func BCond(label int32, cond uint32) uint32 {
	return 0x54000000 | ((uint32(label) & 0x7ffff) << 5) | cond
}

// B encodes "b label", where label is a signed word offset from this
// instruction.
func B(label int32) uint32 {
	return 0x14000000 | (uint32(label) & 0x3ffffff)
}
