// Package rjit provides a small, non-backtracking regex engine: a
// recursive-descent parser, a linear bytecode compiler, a guaranteed
// linear-time Thompson VM, and an optional AArch64 JIT backend.
//
// Example:
//
//	re := rjit.MustCompile("(hello|world)+")
//	if re.Match("helloworld") {
//	    println("matched!")
//	}
//
// Syntax is deliberately small: literals, '.', '|' alternation, and the
// '?'/'*'/'+' quantifiers. There are no capture groups, anchors, character
// classes, or Unicode support.
package rjit

import (
	"bytes"
	"fmt"

	"github.com/augustt198/rjit/bytecode"
	"github.com/augustt198/rjit/jit/arm64"
	"github.com/augustt198/rjit/parser"
	"github.com/augustt198/rjit/prefilter"
	"github.com/augustt198/rjit/vm"
)

// Regex is a compiled pattern, ready to match input strings. A Regex is
// safe for concurrent use by multiple goroutines: Match constructs its own
// vm.Thompson per call rather than sharing mutable VM state.
type Regex struct {
	pattern string
	prog    *bytecode.Program
	prefix  []byte          // nil if the pattern has no mandatory leading literal
	gate    *prefilter.Gate // nil if no admissibility gate applies
}

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Intended for
// patterns known to be valid at compile time, e.g. package-level vars.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("rjit: Compile(%q): %v", pattern, err))
	}
	return re
}

// CompileWithConfig compiles pattern with the given configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	node, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}

	prog, err := bytecode.NewCompiler(config.MaxInstructions).Compile(node)
	if err != nil {
		return nil, err
	}

	re := &Regex{pattern: pattern, prog: prog}
	if config.EnablePrefilter {
		if prefix, ok := prefilter.LiteralPrefix(node); ok {
			re.prefix = prefix
		}
		if gate, ok := prefilter.BuildAlternationGate(node); ok {
			re.gate = gate
		}
	}
	return re, nil
}

// admits runs r's cheap admissibility checks ahead of the full VM/JIT: the
// mandatory-literal-prefix check (cheapest, a single HasPrefix), then the
// Aho-Corasick alternation gate. Neither check ever changes the match
// result, only whether the full engine needs to run at all.
func (r *Regex) admits(input string) bool {
	if r.prefix != nil && !bytes.HasPrefix([]byte(input), r.prefix) {
		return false
	}
	if r.gate != nil && !r.gate.Admits([]byte(input)) {
		return false
	}
	return true
}

// Match reports whether input matches the pattern in full: spec's
// whole-string contract, not substring search.
func (r *Regex) Match(input string) bool {
	if !r.admits(input) {
		return false
	}
	return vm.Run(r.prog, input)
}

// String returns the pattern the Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// Program returns the compiled bytecode program backing r, mainly useful
// for tests and diagnostics (see bytecode.Program.String).
func (r *Regex) Program() *bytecode.Program {
	return r.prog
}

// MatchFn is a compiled, directly callable matcher: either a native
// function loaded by the AArch64 JIT backend, or the portable Thompson VM
// as a fallback when the JIT isn't available.
type MatchFn func(input string) bool

// CompileJIT compiles pattern with DefaultConfig and attempts to produce a
// MatchFn backed by the AArch64 JIT backend.
func CompileJIT(pattern string) (MatchFn, error) {
	return CompileJITWithConfig(pattern, DefaultConfig())
}

// CompileJITWithConfig compiles pattern with config and attempts to produce
// a MatchFn backed by the AArch64 JIT backend (package jit/arm64). It falls
// back to the portable Thompson VM whenever the JIT backend can't be used —
// config.EnableJIT is false, the build isn't arm64, or no assembler
// toolchain is on PATH — so callers always get a working matcher regardless
// of platform or configuration.
func CompileJITWithConfig(pattern string, config Config) (MatchFn, error) {
	re, err := CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	if !config.EnableJIT {
		return re.Match, nil
	}

	jitFn, err := compileNativeJIT(re.prog)
	if err != nil {
		return re.Match, nil
	}

	if re.prefix == nil && re.gate == nil {
		return jitFn, nil
	}
	return func(input string) bool {
		if !re.admits(input) {
			return false
		}
		return jitFn(input)
	}, nil
}

// compileNativeJIT assembles and loads prog via package jit/arm64. Errors
// here are expected and non-fatal on any platform other than arm64 with a
// working aarch64 assembler on PATH.
func compileNativeJIT(prog *bytecode.Program) (MatchFn, error) {
	text := arm64.AssemblyText(prog)
	code, err := arm64.Assemble(text)
	if err != nil {
		return nil, err
	}
	fn, err := arm64.Load(code)
	if err != nil {
		return nil, err
	}
	return MatchFn(fn), nil
}
