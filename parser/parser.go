// Package parser implements the recursive-descent pattern parser described
// in spec.md §4.1:
//
//	regex      := sequence ( '|' regex )?
//	sequence   := atom*
//	atom       := primary quantifier?
//	primary    := '(' regex ')' | letter | digit | '.'
//	quantifier := '?' | '*' | '+'
//
// Resolved Open Question (spec.md §9): a byte that is neither a
// metacharacter nor alphanumeric is treated as a one-byte literal rather
// than silently ignored — this module picks "treat as literal" from the two
// options spec.md offers and locks it in with tests.
package parser

import (
	"github.com/augustt198/rjit/ast"
)

const eof = 0

// Parser turns a pattern string into an ast.Node. It holds a cursor into
// the pattern; byte offsets in the resulting Literal nodes reference this
// same string, so the parser never copies pattern bytes.
type Parser struct {
	pattern string
	pos     int
}

// New creates a Parser positioned at the start of pattern.
func New(pattern string) *Parser {
	return &Parser{pattern: pattern}
}

// Parse parses pattern in full and returns its normalized AST.
//
// Normalization (ast.Normalize) is applied before returning, matching
// spec.md §4.1's "Normalization passes, applied in order" as part of the
// parse pipeline.
func Parse(pattern string) (*ast.Node, error) {
	p := New(pattern)
	node, err := p.parseRegex()
	if err != nil {
		return nil, err
	}
	if p.peek() != eof {
		// Only ')' can stop parseRegex short of EOF without being consumed
		// by a nested call; a lone ')' at the top level is unmatched.
		return nil, &ParseError{Pattern: pattern, Offset: p.pos, Err: ErrUnmatchedParen}
	}
	return ast.Normalize(node), nil
}

func (p *Parser) peek() byte {
	if p.pos >= len(p.pattern) {
		return eof
	}
	return p.pattern[p.pos]
}

func (p *Parser) advance() byte {
	c := p.peek()
	if c != eof {
		p.pos++
	}
	return c
}

func (p *Parser) errorf(err error) error {
	return &ParseError{Pattern: p.pattern, Offset: p.pos, Err: err}
}

// parseRegex implements `regex := sequence ('|' regex)?`, building a
// right-associative binary Alternate tree: a|b|c parses as a|(b|c).
func (p *Parser) parseRegex() (*ast.Node, error) {
	left, err := p.parseSequence()
	if err != nil {
		return nil, err
	}

	if p.peek() == '|' {
		p.advance()
		right, err := p.parseRegex()
		if err != nil {
			return nil, err
		}
		return ast.NewAlternate(left, right), nil
	}

	return left, nil
}

// parseSequence implements `sequence := atom*`, stopping at '\0', '|', or
// ')'. A quantifier mutates the most recently appended atom in place by
// replacing it with a Repeat wrapping the old node — re-expressing the
// original C source's copy-and-overwrite trick as "replace the last slot".
func (p *Parser) parseSequence() (*ast.Node, error) {
	var children []*ast.Node

	for {
		c := p.peek()
		if c == eof || c == '|' || c == ')' {
			break
		}

		switch c {
		case '(':
			p.advance()
			inner, err := p.parseRegex()
			if err != nil {
				return nil, err
			}
			if p.peek() != ')' {
				if p.peek() == eof {
					return nil, p.errorf(ErrUnexpectedEOF)
				}
				return nil, p.errorf(ErrUnmatchedParen)
			}
			p.advance()
			children = append(children, inner)

		case '.':
			p.advance()
			children = append(children, ast.NewAny())

		case '?', '*', '+':
			if len(children) == 0 {
				return nil, p.errorf(ErrDanglingQuantifier)
			}
			last := children[len(children)-1]
			if last.Kind == ast.KindRepeat {
				return nil, p.errorf(ErrDanglingQuantifier)
			}
			p.advance()
			min, max := quantifierBounds(c)
			children[len(children)-1] = ast.NewRepeat(last, min, max)

		default:
			// Any other byte, including bytes outside a-z/A-Z/0-9, is
			// treated as a one-byte literal (see package doc).
			start := p.pos
			p.advance()
			children = append(children, ast.NewLiteral(p.pattern, start))
		}
	}

	return ast.NewSequence(children), nil
}

func quantifierBounds(c byte) (min, max int) {
	switch c {
	case '?':
		return 0, 1
	case '*':
		return 0, ast.Unbounded
	case '+':
		return 1, ast.Unbounded
	default:
		panic("parser: unreachable quantifier byte")
	}
}
