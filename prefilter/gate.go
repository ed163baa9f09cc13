package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/augustt198/rjit/ast"
)

// Gate is a fast-reject admissibility check over an Aho-Corasick automaton
// built from a pattern's top-level literal alternatives: if none of the
// automaton's patterns occur anywhere in an input, that input cannot match
// the regex the Gate was built from, so the caller can skip the VM/JIT
// entirely. A positive result from the automaton is not itself a match —
// the caller must still run the full engine.
type Gate struct {
	automaton *ahocorasick.Automaton
}

// Admits reports whether input could possibly match; false is a definitive
// rejection, true means "run the full engine to find out."
func (g *Gate) Admits(input []byte) bool {
	return g.automaton.IsMatch(input)
}

// BuildAlternationGate builds a Gate from root if root is a tree of nested
// Alternate nodes whose every leaf is a pure Literal (no Any or Repeat
// nested anywhere inside). This mirrors how the parser's right-associative
// alternation builds "a|b|c" as Alternate(a, Alternate(b, c)).
//
// It returns (nil, false) if root does not have this shape, or if every
// match of root is allowed to be the empty string (in which case no
// literal is mandatory and the gate could never reject anything).
func BuildAlternationGate(root *ast.Node) (*Gate, bool) {
	literals, ok := collectLiterals(root)
	if !ok || len(literals) == 0 {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Gate{automaton: automaton}, true
}

// collectLiterals gathers the literal bytes of every leaf in a pure
// Alternate/Literal tree rooted at n. It returns ok == false the moment it
// finds an Any or Repeat anywhere in the tree.
func collectLiterals(n *ast.Node) ([][]byte, bool) {
	switch n.Kind {
	case ast.KindLiteral:
		return [][]byte{[]byte(n.Bytes())}, true
	case ast.KindAlternate:
		left, ok := collectLiterals(n.Children[0])
		if !ok {
			return nil, false
		}
		right, ok := collectLiterals(n.Children[1])
		if !ok {
			return nil, false
		}
		return append(left, right...), true
	case ast.KindSequence:
		var out [][]byte
		for _, c := range n.Children {
			if c.Kind != ast.KindLiteral {
				return nil, false
			}
			out = append(out, []byte(c.Bytes()))
		}
		if len(out) == 0 {
			return nil, false
		}
		// A Sequence of pure literals is itself one mandatory literal run,
		// not several independent alternatives.
		joined := out[0]
		for _, b := range out[1:] {
			joined = append(joined, b...)
		}
		return [][]byte{joined}, true
	default:
		return nil, false
	}
}
