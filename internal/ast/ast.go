// Package ast holds the parsed form of a propositional formula.
//
// Every node exclusively owns its children; trees are built once by the
// parser and never mutated afterwards.
package ast

type Kind int

const (
	VariableKind Kind = iota
	NotKind
	AndKind
	OrKind
	ImpliesKind
	IffKind
	GroupedKind
)

func (k Kind) String() string {
	switch k {
	case VariableKind:
		return "Variable"
	case NotKind:
		return "Not"
	case AndKind:
		return "And"
	case OrKind:
		return "Or"
	case ImpliesKind:
		return "Implies"
	case IffKind:
		return "Iff"
	case GroupedKind:
		return "Grouped"
	default:
		return "Unknown"
	}
}

// Expr is a node of the formula tree.
type Expr interface {
	Kind() Kind
	isExpr()
}

type Variable struct {
	Name string
}

type Not struct {
	X Expr
}

type And struct {
	Left, Right Expr
}

type Or struct {
	Left, Right Expr
}

type Implies struct {
	Left, Right Expr
}

type Iff struct {
	Left, Right Expr
}

// Grouped records explicit parentheses in the source. It evaluates exactly
// like its child.
type Grouped struct {
	X Expr
}

func (*Variable) Kind() Kind { return VariableKind }
func (*Not) Kind() Kind      { return NotKind }
func (*And) Kind() Kind      { return AndKind }
func (*Or) Kind() Kind       { return OrKind }
func (*Implies) Kind() Kind  { return ImpliesKind }
func (*Iff) Kind() Kind      { return IffKind }
func (*Grouped) Kind() Kind  { return GroupedKind }

func (*Variable) isExpr() {}
func (*Not) isExpr()      {}
func (*And) isExpr()      {}
func (*Or) isExpr()       {}
func (*Implies) isExpr()  {}
func (*Iff) isExpr()      {}
func (*Grouped) isExpr()  {}

// Operands returns the binary operands of e, or ok=false when e is not a
// binary node.
func Operands(e Expr) (left, right Expr, ok bool) {
	switch n := e.(type) {
	case *And:
		return n.Left, n.Right, true
	case *Or:
		return n.Left, n.Right, true
	case *Implies:
		return n.Left, n.Right, true
	case *Iff:
		return n.Left, n.Right, true
	default:
		return nil, nil, false
	}
}

// Equal reports whether a and b are structurally identical, Grouped nodes
// included.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch n := a.(type) {
	case *Variable:
		return n.Name == b.(*Variable).Name
	case *Not:
		return Equal(n.X, b.(*Not).X)
	case *Grouped:
		return Equal(n.X, b.(*Grouped).X)
	}

	al, ar, _ := Operands(a)
	bl, br, _ := Operands(b)
	return Equal(al, bl) && Equal(ar, br)
}

// Variables lists the distinct variable names of e in first-occurrence
// order, scanning left to right.
func Variables(e Expr) []string {
	seen := make(map[string]struct{})
	var names []string

	var walk func(Expr)
	walk = func(e Expr) {
		switch n := e.(type) {
		case *Variable:
			if _, ok := seen[n.Name]; !ok {
				seen[n.Name] = struct{}{}
				names = append(names, n.Name)
			}
		case *Not:
			walk(n.X)
		case *Grouped:
			walk(n.X)
		default:
			if l, r, ok := Operands(e); ok {
				walk(l)
				walk(r)
			}
		}
	}
	walk(e)

	return names
}

// Depth counts the operator nodes on the longest path from e down to a
// variable. A lone variable has depth 0.
func Depth(e Expr) int {
	switch n := e.(type) {
	case *Not:
		return Depth(n.X) + 1
	case *Grouped:
		return Depth(n.X) + 1
	}

	l, r, ok := Operands(e)
	if !ok {
		return 0
	}
	return max(Depth(l), Depth(r)) + 1
}
