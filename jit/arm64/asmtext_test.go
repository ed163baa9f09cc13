package arm64

import (
	"strings"
	"testing"

	"github.com/augustt198/rjit/bytecode"
	"github.com/augustt198/rjit/parser"
)

func compileOrFatal(t *testing.T, pattern string) *bytecode.Program {
	t.Helper()
	n, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("parser.Parse(%q) error = %v", pattern, err)
	}
	prog, err := bytecode.Compile(n)
	if err != nil {
		t.Fatalf("bytecode.Compile(%q) error = %v", pattern, err)
	}
	return prog
}

func TestAssemblyTextContainsEntryAndExit(t *testing.T) {
	prog := compileOrFatal(t, "a|b")
	text := AssemblyText(prog)

	for _, want := range []string{
		"_matchit:",
		"the_loop:",
		"loop_inner:",
		"MATCH:",
		"FIN:",
		"ret\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("AssemblyText(%q) missing %q\n---\n%s", "a|b", want, text)
		}
	}
}

func TestAssemblyTextOneLabelPerInstruction(t *testing.T) {
	prog := compileOrFatal(t, "123")
	text := AssemblyText(prog)

	for idx := range prog.Instructions {
		want := "bytecode_inst_" + itoa(idx) + ":\n"
		if !strings.Contains(text, want) {
			t.Errorf("AssemblyText missing instruction label %q", want)
		}
	}
}

func TestAssemblyTextEmitsLiteralComparison(t *testing.T) {
	prog := compileOrFatal(t, "1")
	text := AssemblyText(prog)
	if !strings.Contains(text, "cmp w7, #49") { // '1' == 0x31 == 49
		t.Errorf("AssemblyText(%q) missing literal comparison:\n%s", "1", text)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
