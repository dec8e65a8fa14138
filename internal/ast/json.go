package ast

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/propcheck/internal/token"
)

// Nodes encode as externally tagged objects:
//
//	{"Implies":[{"Grouped":{"Or":[{"Variable":"p1"},{"Variable":"p2"}]}},{"Variable":"p3"}]}

func (n *Variable) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Variable": n.Name})
}

func (n *Not) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Expr{"Not": n.X})
}

func (n *Grouped) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Expr{"Grouped": n.X})
}

func (n *And) MarshalJSON() ([]byte, error)     { return marshalBinary(n) }
func (n *Or) MarshalJSON() ([]byte, error)      { return marshalBinary(n) }
func (n *Implies) MarshalJSON() ([]byte, error) { return marshalBinary(n) }
func (n *Iff) MarshalJSON() ([]byte, error)     { return marshalBinary(n) }

func marshalBinary(e Expr) ([]byte, error) {
	l, r, _ := Operands(e)
	return json.Marshal(map[string][2]Expr{e.Kind().String(): {l, r}})
}

// Node wraps an Expr so it can be decoded as a JSON field.
type Node struct {
	Expr Expr
}

func (n Node) MarshalJSON() ([]byte, error) {
	if n.Expr == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Expr)
}

func (n *Node) UnmarshalJSON(data []byte) error {
	e, err := Decode(data)
	if err != nil {
		return err
	}
	n.Expr = e
	return nil
}

// MaxDecodeDepth bounds how deeply Decode follows nested nodes.
const MaxDecodeDepth = 512

// Decode reads an expression in the tagged JSON form produced by Marshal.
func Decode(data []byte) (Expr, error) {
	return decode(data, 0)
}

func decode(data []byte, depth int) (Expr, error) {
	if depth > MaxDecodeDepth {
		return nil, fmt.Errorf("node nests deeper than %d levels", MaxDecodeDepth)
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("node must have exactly one tag, got %d", len(tagged))
	}

	for tag, raw := range tagged {
		switch tag {
		case "Variable":
			var name string
			if err := json.Unmarshal(raw, &name); err != nil {
				return nil, fmt.Errorf("decode Variable: %w", err)
			}
			if !token.IsVariableName(name) {
				return nil, fmt.Errorf("'%s' is not a propositional variable", name)
			}
			return &Variable{Name: name}, nil
		case "Not":
			x, err := decode(raw, depth+1)
			if err != nil {
				return nil, err
			}
			return &Not{X: x}, nil
		case "Grouped":
			x, err := decode(raw, depth+1)
			if err != nil {
				return nil, err
			}
			return &Grouped{X: x}, nil
		case "And", "Or", "Implies", "Iff":
			return decodeBinary(tag, raw, depth)
		default:
			return nil, fmt.Errorf("unknown node tag %q", tag)
		}
	}

	return nil, fmt.Errorf("empty node")
}

func decodeBinary(tag string, raw json.RawMessage, depth int) (Expr, error) {
	var operands []json.RawMessage
	if err := json.Unmarshal(raw, &operands); err != nil {
		return nil, fmt.Errorf("decode %s: %w", tag, err)
	}
	if len(operands) != 2 {
		return nil, fmt.Errorf("%s needs exactly 2 operands, got %d", tag, len(operands))
	}

	l, err := decode(operands[0], depth+1)
	if err != nil {
		return nil, err
	}
	r, err := decode(operands[1], depth+1)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "And":
		return &And{Left: l, Right: r}, nil
	case "Or":
		return &Or{Left: l, Right: r}, nil
	case "Implies":
		return &Implies{Left: l, Right: r}, nil
	default:
		return &Iff{Left: l, Right: r}, nil
	}
}
