// Package ast defines the parse-tree representation produced by package
// parser and consumed by package bytecode.
//
// A Node is a tagged variant over the five kinds spec.md defines: Literal,
// Any, Sequence, Alternate, and Repeat. SpecialLiteral, CharClass, and Null
// are reserved by the original design but have no implementation here and
// are deliberately omitted rather than stubbed out.
package ast

import (
	"fmt"
	"strings"
)

// Kind identifies which variant of Node is populated.
type Kind uint8

const (
	// KindLiteral matches a fixed run of bytes.
	KindLiteral Kind = iota
	// KindAny matches any single non-null byte.
	KindAny
	// KindSequence matches its children in order.
	KindSequence
	// KindAlternate matches either of exactly two children.
	KindAlternate
	// KindRepeat matches its child between Min and Max times.
	KindRepeat
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindAny:
		return "Any"
	case KindSequence:
		return "Sequence"
	case KindAlternate:
		return "Alternate"
	case KindRepeat:
		return "Repeat"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Unbounded is the sentinel used for Repeat.Max when there is no upper
// bound (the '*' and '+' quantifiers).
const Unbounded = -1

// Node is a node in the regex parse tree. Its Kind determines which of the
// other fields are meaningful:
//
//	KindLiteral:   Str, Start, Len
//	KindAny:       (no payload)
//	KindSequence:  Children
//	KindAlternate: Children (always exactly 2, after parsing)
//	KindRepeat:    Children (always exactly 1), Min, Max
//
// Str/Start/Len describe a literal as a slice of the original pattern
// string rather than a copy: Str is the full source pattern, and the
// literal's bytes are Str[Start:Start+Len]. This lets compress-literals
// merge adjacent literals by comparing offsets instead of byte contents.
type Node struct {
	Kind Kind

	// Literal payload.
	Str   string
	Start int
	Len   int

	// Sequence/Alternate/Repeat payload.
	Children []*Node

	// Repeat payload.
	Min int
	Max int
}

// Bytes returns the literal's byte slice. Only valid for KindLiteral.
func (n *Node) Bytes() string {
	return n.Str[n.Start : n.Start+n.Len]
}

// End returns the offset one past the literal's last byte. Only valid for
// KindLiteral; used by compress-literals to test adjacency.
func (n *Node) End() int {
	return n.Start + n.Len
}

// NewLiteral builds a single-byte literal node referencing pattern[offset].
func NewLiteral(pattern string, offset int) *Node {
	return &Node{Kind: KindLiteral, Str: pattern, Start: offset, Len: 1}
}

// NewAny builds an Any node.
func NewAny() *Node {
	return &Node{Kind: KindAny}
}

// NewSequence builds a Sequence node from the given children (may be empty).
func NewSequence(children []*Node) *Node {
	return &Node{Kind: KindSequence, Children: children}
}

// NewAlternate builds an Alternate node. left and right must be non-nil.
func NewAlternate(left, right *Node) *Node {
	return &Node{Kind: KindAlternate, Children: []*Node{left, right}}
}

// NewRepeat wraps child in a Repeat node with the given bounds.
func NewRepeat(child *Node, min, max int) *Node {
	return &Node{Kind: KindRepeat, Children: []*Node{child}, Min: min, Max: max}
}

// String renders the node as a Go-syntax-free debug form, e.g.
// Sequence(Literal("ab") Repeat(Any, 0, inf)). It is a Stringer for tests
// and diagnostics, not a pattern-reconstruction printer.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindLiteral:
		return fmt.Sprintf("Literal(%q)", n.Bytes())
	case KindAny:
		return "Any"
	case KindSequence:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = c.String()
		}
		return fmt.Sprintf("Sequence(%s)", strings.Join(parts, " "))
	case KindAlternate:
		return fmt.Sprintf("Alternate(%s, %s)", n.Children[0], n.Children[1])
	case KindRepeat:
		max := "inf"
		if n.Max != Unbounded {
			max = fmt.Sprintf("%d", n.Max)
		}
		return fmt.Sprintf("Repeat(%s, %d, %s)", n.Children[0], n.Min, max)
	default:
		return n.Kind.String()
	}
}
