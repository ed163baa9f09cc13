// Package prefilter implements cheap, always-correct admissibility checks
// that run ahead of the full Thompson VM or JIT backend. A prefilter never
// changes the match result: it only lets the engine short-circuit to
// "no match" without paying for a full run, the same "literal extraction
// as a fast-reject gate" idea github.com/coregx/coregex's meta package
// applies ahead of its NFA/DFA engines.
package prefilter

import (
	"github.com/augustt198/rjit/ast"
)

// LiteralPrefix reports the literal byte sequence every match of root must
// begin with, if any. It walks into Sequence nodes as long as each leading
// child is a pure Literal, stopping at the first Any/Alternate/Repeat.
//
// A pattern whose root has no mandatory leading literal (e.g. it starts
// with Any, Alternate, or a Repeat with Min == 0) returns ("", false).
func LiteralPrefix(root *ast.Node) ([]byte, bool) {
	if root == nil {
		return nil, false
	}

	var buf []byte
	n := root
	for {
		switch n.Kind {
		case ast.KindLiteral:
			return append(buf, n.Bytes()...), true
		case ast.KindSequence:
			if len(n.Children) == 0 {
				return buf, len(buf) > 0
			}
			head := n.Children[0]
			if head.Kind != ast.KindLiteral {
				return buf, len(buf) > 0
			}
			buf = append(buf, head.Bytes()...)
			if len(n.Children) == 1 {
				return buf, len(buf) > 0
			}
			// Only a full-length mandatory literal followed by more
			// mandatory literals extends the prefix further; anything
			// else (Any, Alternate, Repeat) ends the scan here.
			rest := n.Children[1:]
			if allLiteral(rest) {
				for _, c := range rest {
					buf = append(buf, c.Bytes()...)
				}
				return buf, true
			}
			return buf, len(buf) > 0
		default:
			return buf, len(buf) > 0
		}
	}
}

func allLiteral(nodes []*ast.Node) bool {
	for _, n := range nodes {
		if n.Kind != ast.KindLiteral {
			return false
		}
	}
	return true
}
