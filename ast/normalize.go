package ast

// EliminateSingleSequences replaces every Sequence with exactly one child by
// that child, bottom-up. It is the first normalization pass run after
// parsing (spec.md §4.1).
func EliminateSingleSequences(n *Node) *Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case KindSequence:
		for i, c := range n.Children {
			n.Children[i] = EliminateSingleSequences(c)
		}
		if len(n.Children) == 1 {
			return n.Children[0]
		}
		return n
	case KindAlternate:
		n.Children[0] = EliminateSingleSequences(n.Children[0])
		n.Children[1] = EliminateSingleSequences(n.Children[1])
		return n
	case KindRepeat:
		n.Children[0] = EliminateSingleSequences(n.Children[0])
		return n
	default:
		return n
	}
}

// CompressLiterals fuses runs of adjacent Literal children within every
// Sequence, recursing into Alternate and Repeat. Two literals are adjacent
// when the first's End() equals the second's Start (they came from
// contiguous bytes of the original pattern); any other node kind breaks the
// run. This is the second normalization pass (spec.md §4.1) and must run
// after EliminateSingleSequences.
func CompressLiterals(n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindSequence:
		for _, c := range n.Children {
			CompressLiterals(c)
		}
		merged := n.Children[:0]
		var curr *Node
		for _, c := range n.Children {
			if c.Kind == KindLiteral && curr != nil && curr.Kind == KindLiteral && curr.End() == c.Start {
				curr.Len += c.Len
				continue
			}
			merged = append(merged, c)
			if c.Kind == KindLiteral {
				curr = c
			} else {
				curr = nil
			}
		}
		n.Children = merged

	case KindAlternate:
		CompressLiterals(n.Children[0])
		CompressLiterals(n.Children[1])

	case KindRepeat:
		CompressLiterals(n.Children[0])
	}
}

// Normalize runs both passes in the required order and returns the
// resulting root node. Merging literals can leave a Sequence with a single
// child, so EliminateSingleSequences runs once more at the end.
func Normalize(n *Node) *Node {
	n = EliminateSingleSequences(n)
	CompressLiterals(n)
	return EliminateSingleSequences(n)
}
