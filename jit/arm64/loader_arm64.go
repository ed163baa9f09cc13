//go:build arm64

package arm64

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/cpu"
	"golang.org/x/sys/unix"
)

// ErrCPUUnsupported is returned when the running CPU doesn't identify as
// arm64 at runtime, even though the binary was built for GOARCH=arm64
// (e.g. an arm64 binary executed under emulation).
var ErrCPUUnsupported = errors.New("jit/arm64: host CPU does not support arm64 execution")

// MatchFn is a loaded, directly callable compiled program: it reports
// whether its program matches input in full, the same contract as
// vm.Run.
type MatchFn func(input string) bool

// loadedProgram keeps the mmap'd pages alive for as long as its MatchFn is
// reachable; Go's GC has no other reference to this memory.
type loadedProgram struct {
	code []byte
}

// Load maps code into executable memory and returns a MatchFn that calls
// into it. code must be the raw .text bytes produced by Assemble for
// assembly emitted by AssemblyText.
//
// This follows original_source/rjit.c's regex_compile_jit: allocate
// memory, keep it writable just long enough to copy the code in, switch it to
// read+execute, then invalidate the instruction cache over it.
// unix.Mmap/unix.Mprotect are the Go-idiomatic, no-cgo
// replacement for the C source's mmap + pthread_jit_write_protect_np pair.
func Load(code []byte) (MatchFn, error) {
	if !cpu.ARM64.HasASIMD && !cpu.ARM64.HasFP {
		// Best-effort sanity check that this is a real arm64 core; absence
		// of both base feature bits would be highly unusual and signals a
		// CPU identification problem worth surfacing rather than a silent
		// crash inside JIT-ed code.
		return nil, ErrCPUUnsupported
	}

	pageSize := unix.Getpagesize()
	size := alignUp(len(code), pageSize)

	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	copy(mem, code)

	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		unix.Munmap(mem)
		return nil, err
	}
	invalidateICache(unsafe.Pointer(&mem[0]), uintptr(len(mem)))

	lp := &loadedProgram{code: mem}
	return lp.call, nil
}

func (lp *loadedProgram) call(input string) bool {
	// NUL-terminate a private copy: the generated code's end-of-string
	// test is a byte-equals-zero check, matching the C-string contract
	// original_source/rjit.c's VM was written against.
	buf := make([]byte, len(input)+1)
	copy(buf, input)

	codePtr := unsafe.Pointer(&lp.code[0])
	bufPtr := unsafe.Pointer(&buf[0])
	return callCompiled(codePtr, bufPtr) != 0
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// callCompiled is implemented in trampoline_arm64.s: it sets up the AArch64
// C calling convention (x0 = bufPtr) and branches into code, returning x0.
//
//go:noescape
func callCompiled(code, buf unsafe.Pointer) uintptr

// invalidateICache is implemented in icache_arm64.s.
//
//go:noescape
func invalidateICache(addr unsafe.Pointer, size uintptr)
