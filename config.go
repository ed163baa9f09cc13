package rjit

// Config controls the non-functional knobs of compilation: resource limits
// and which optional backends are attempted. It follows the same
// Config/DefaultConfig shape as github.com/coregx/coregex's meta.Config,
// scaled down to this module's much smaller surface.
type Config struct {
	// MaxInstructions caps the size of the compiled bytecode program. Zero
	// means unlimited. Compilation fails with bytecode.ErrCapacityExceeded
	// if the limit is exceeded.
	MaxInstructions int

	// EnablePrefilter builds a literal-alternation prefilter (see package
	// prefilter) ahead of the VM/JIT when the pattern's shape allows one.
	// Default: true.
	EnablePrefilter bool

	// EnableJIT attempts to compile the pattern to native AArch64 code via
	// package jit/arm64 when compiling with CompileJIT. It has no effect on
	// Compile/CompileWithConfig, which always use the portable VM.
	// Default: true.
	EnableJIT bool
}

// DefaultConfig returns the default configuration: no instruction cap, the
// prefilter enabled, and the JIT attempted when requested.
func DefaultConfig() Config {
	return Config{
		MaxInstructions: 0,
		EnablePrefilter: true,
		EnableJIT:       true,
	}
}
