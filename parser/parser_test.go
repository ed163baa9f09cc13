package parser

import (
	"errors"
	"testing"

	"github.com/augustt198/rjit/ast"
)

func TestParseEmpty(t *testing.T) {
	n, err := Parse("")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if n.Kind != ast.KindSequence || len(n.Children) != 0 {
		t.Fatalf("Parse(\"\") = %v, want empty sequence", n)
	}
}

func TestParseLiteral(t *testing.T) {
	n, err := Parse("123")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if n.Kind != ast.KindLiteral || n.Bytes() != "123" {
		t.Fatalf("Parse(\"123\") = %v, want merged literal \"123\"", n)
	}
}

func TestParseAlternateRightAssociative(t *testing.T) {
	n, err := Parse("a|b|c")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if n.Kind != ast.KindAlternate {
		t.Fatalf("root kind = %v, want Alternate", n.Kind)
	}
	if n.Children[0].Bytes() != "a" {
		t.Fatalf("left child = %v, want literal a", n.Children[0])
	}
	right := n.Children[1]
	if right.Kind != ast.KindAlternate || right.Children[0].Bytes() != "b" || right.Children[1].Bytes() != "c" {
		t.Fatalf("right subtree = %v, want Alternate(b, c)", right)
	}
}

func TestParseAny(t *testing.T) {
	n, err := Parse("a.c")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if n.Kind != ast.KindSequence || len(n.Children) != 3 {
		t.Fatalf("Parse(\"a.c\") = %v, want 3-element sequence", n)
	}
	if n.Children[1].Kind != ast.KindAny {
		t.Fatalf("middle child = %v, want Any", n.Children[1])
	}
}

func TestParseQuantifiers(t *testing.T) {
	tests := []struct {
		pattern  string
		min, max int
	}{
		{"1?", 0, 1},
		{"1*", 0, ast.Unbounded},
		{"1+", 1, ast.Unbounded},
	}
	for _, tt := range tests {
		n, err := Parse(tt.pattern)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
		}
		if n.Kind != ast.KindRepeat || n.Min != tt.min || n.Max != tt.max {
			t.Fatalf("Parse(%q) = %v, want Repeat(%d, %d)", tt.pattern, n, tt.min, tt.max)
		}
	}
}

func TestParseGroup(t *testing.T) {
	n, err := Parse("(hello|world)+")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if n.Kind != ast.KindRepeat || n.Min != 1 || n.Max != ast.Unbounded {
		t.Fatalf("Parse() = %v, want Repeat(1, inf)", n)
	}
	alt := n.Children[0]
	if alt.Kind != ast.KindAlternate {
		t.Fatalf("repeat child = %v, want Alternate", alt)
	}
}

func TestParseUnmatchedParenAtEOF(t *testing.T) {
	_, err := Parse("(abc")
	var pe *ParseError
	if !errors.As(err, &pe) || !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("Parse(\"(abc\") error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestParseUnmatchedParenBeforeOtherClose(t *testing.T) {
	_, err := Parse("(abc))")
	if !errors.Is(err, ErrUnmatchedParen) {
		t.Fatalf("Parse(\"(abc))\") error = %v, want ErrUnmatchedParen", err)
	}
}

func TestParseStrayCloseParen(t *testing.T) {
	_, err := Parse("abc)")
	if !errors.Is(err, ErrUnmatchedParen) {
		t.Fatalf("Parse(\"abc)\") error = %v, want ErrUnmatchedParen", err)
	}
}

func TestParseDanglingQuantifier(t *testing.T) {
	_, err := Parse("?")
	if !errors.Is(err, ErrDanglingQuantifier) {
		t.Fatalf("Parse(\"?\") error = %v, want ErrDanglingQuantifier", err)
	}
}

func TestParseDoubleQuantifier(t *testing.T) {
	for _, pattern := range []string{"a**", "a??", "a*?", "a+*"} {
		_, err := Parse(pattern)
		if !errors.Is(err, ErrDanglingQuantifier) {
			t.Fatalf("Parse(%q) error = %v, want ErrDanglingQuantifier", pattern, err)
		}
	}
}

func TestParseNonAlphanumericIsLiteral(t *testing.T) {
	// Open Question resolution: stray bytes are literals, not dropped.
	n, err := Parse("a b")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if n.Kind != ast.KindLiteral || n.Bytes() != "a b" {
		t.Fatalf("Parse(\"a b\") = %v, want literal \"a b\"", n)
	}
}

func TestParseDeepAlternation(t *testing.T) {
	pattern := ""
	for i := 0; i < 1000; i++ {
		if i > 0 {
			pattern += "|"
		}
		pattern += "a"
	}
	if _, err := Parse(pattern); err != nil {
		t.Fatalf("Parse(depth 1000 alternation) error = %v", err)
	}
}

func TestParseComplexPattern(t *testing.T) {
	n, err := Parse("(hello|world(0|1|2|3)?)+")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if n.Kind != ast.KindRepeat {
		t.Fatalf("root = %v, want Repeat", n)
	}
}
