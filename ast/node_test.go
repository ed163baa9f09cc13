package ast

import "testing"

func TestLiteralBytes(t *testing.T) {
	n := NewLiteral("hello", 1)
	if got := n.Bytes(); got != "e" {
		t.Fatalf("Bytes() = %q, want %q", got, "e")
	}
	if n.End() != 2 {
		t.Fatalf("End() = %d, want 2", n.End())
	}
}

func TestNodeStringLiteral(t *testing.T) {
	n := NewLiteral("abc", 0)
	n.Len = 3
	if got, want := n.String(), `Literal("abc")`; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestNodeStringRepeatUnbounded(t *testing.T) {
	n := NewRepeat(NewAny(), 0, Unbounded)
	if got, want := n.String(), "Repeat(Any, 0, inf)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestNodeStringAlternate(t *testing.T) {
	n := NewAlternate(NewLiteral("a", 0), NewLiteral("b", 0))
	if got, want := n.String(), `Alternate(Literal("a"), Literal("b"))`; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestNilNodeString(t *testing.T) {
	var n *Node
	if got, want := n.String(), "<nil>"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
