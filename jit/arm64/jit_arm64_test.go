//go:build arm64

package arm64

import (
	"errors"
	"testing"

	"github.com/augustt198/rjit/bytecode"
	"github.com/augustt198/rjit/parser"
)

func TestLoadAndRunEndToEnd(t *testing.T) {
	n, err := parser.Parse("(hello|world)+")
	if err != nil {
		t.Fatalf("parser.Parse error = %v", err)
	}
	prog, err := bytecode.Compile(n)
	if err != nil {
		t.Fatalf("bytecode.Compile error = %v", err)
	}

	text := AssemblyText(prog)
	code, err := Assemble(text)
	if err != nil {
		if errors.Is(err, ErrToolchainUnavailable) {
			t.Skip("no aarch64 assembler toolchain available")
		}
		t.Fatalf("Assemble error = %v", err)
	}

	fn, err := Load(code)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"helloworld", true},
		{"helloworldhello", true},
		{"helloworl", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := fn(tt.input); got != tt.want {
			t.Errorf("fn(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
