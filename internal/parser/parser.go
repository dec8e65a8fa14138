// Package parser builds formula trees from text by recursive descent.
//
// Grammar, lowest precedence first; every binary level is left-associative:
//
//	expression := iff
//	iff        := implies ( "<->" implies )*
//	implies    := or ( "->" or )*
//	or         := and ( "|" and )*
//	and        := not ( "&" not )*
//	not        := "~" not | primary
//	primary    := variable | "(" expression ")"
package parser

import (
	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
	"github.com/DjordjeVuckovic/propcheck/internal/ast"
	"github.com/DjordjeVuckovic/propcheck/internal/token"
)

const DefaultMaxDepth = 256

type Option func(p *Parser)

// WithMaxDepth bounds the height of the built tree: the number of operator
// nodes, parentheses included, on any path from the root to a variable.
// Values below 1 keep the default.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

type Parser struct {
	src      token.Source
	current  token.Token
	maxDepth int
	depth    int
	// height of the node most recently built
	height int

	variables []string
	seen      map[string]struct{}
}

// New creates a parser over src and reads the first token, so a lexical
// error at the very start of the input is reported here.
func New(src token.Source, opts ...Option) (*Parser, error) {
	p := &Parser{
		src:      src,
		maxDepth: DefaultMaxDepth,
		seen:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse reads a whole formula from text and returns its tree together with
// the distinct variable names in first-occurrence order.
func Parse(text string, opts ...Option) (ast.Expr, []string, error) {
	p, err := New(token.NewLexer(text), opts...)
	if err != nil {
		return nil, nil, err
	}

	expr, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}
	return expr, p.Variables(), nil
}

// Parse consumes one expression and requires the input to end right after it.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current.Type != token.EOF {
		return nil, p.errorf("trailing tokens after a complete expression")
	}
	return expr, nil
}

// Variables returns the names seen so far, in first-occurrence order.
func (p *Parser) Variables() []string {
	out := make([]string, len(p.variables))
	copy(out, p.variables)
	return out
}

func (p *Parser) advance() error {
	tok, err := p.src.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *Parser) errorf(msg string) *apperr.ParseError {
	return &apperr.ParseError{Pos: p.current.Pos, Found: p.current.String(), Message: msg}
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseIff()
}

func (p *Parser) parseIff() (ast.Expr, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}

	for p.current.Type == token.IFF {
		pos, lh := p.current.Pos, p.height
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		if err := p.built(pos, max(lh, p.height)+1); err != nil {
			return nil, err
		}
		left = &ast.Iff{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseImplies() (ast.Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	for p.current.Type == token.IMPLIES {
		pos, lh := p.current.Pos, p.height
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.built(pos, max(lh, p.height)+1); err != nil {
			return nil, err
		}
		left = &ast.Implies{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current.Type == token.OR {
		pos, lh := p.current.Pos, p.height
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		if err := p.built(pos, max(lh, p.height)+1); err != nil {
			return nil, err
		}
		left = &ast.Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.current.Type == token.AND {
		pos, lh := p.current.Pos, p.height
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		if err := p.built(pos, max(lh, p.height)+1); err != nil {
			return nil, err
		}
		left = &ast.And{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (ast.Expr, error) {
	if p.current.Type != token.NOT {
		return p.parsePrimary()
	}

	pos := p.current.Pos
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.advance(); err != nil {
		return nil, err
	}
	x, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	if err := p.built(pos, p.height+1); err != nil {
		return nil, err
	}
	return &ast.Not{X: x}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.current.Type {
	case token.LPAREN:
		pos := p.current.Pos
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.current.Type != token.RPAREN {
			return nil, p.errorf("expected ')'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.built(pos, p.height+1); err != nil {
			return nil, err
		}
		return &ast.Grouped{X: x}, nil

	case token.VARIABLE:
		name := p.current.Value
		p.record(name)
		if err := p.advance(); err != nil {
			return nil, err
		}
		p.height = 0
		return &ast.Variable{Name: name}, nil

	default:
		return nil, p.errorf("unexpected token, expected a variable or '('")
	}
}

func (p *Parser) record(name string) {
	if _, ok := p.seen[name]; ok {
		return
	}
	p.seen[name] = struct{}{}
	p.variables = append(p.variables, name)
}

// enter bounds recursion into negations and parentheses before their
// operand is parsed.
func (p *Parser) enter() error {
	if p.depth >= p.maxDepth {
		return &apperr.DepthError{Pos: p.current.Pos, Max: p.maxDepth}
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// built records the height of a node whose operator sits at pos.
func (p *Parser) built(pos, height int) error {
	if height > p.maxDepth {
		return &apperr.DepthError{Pos: pos, Max: p.maxDepth}
	}
	p.height = height
	return nil
}
