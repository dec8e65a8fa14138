package ast

import "strings"

func padding(depth int) string {
	if depth == 0 {
		return ""
	}
	return strings.Repeat("│   ", depth-1) + "└── "
}

// Tree renders e as an indented outline, one node per line.
//
//	Implies
//	└── Grouped
//	│   └── Or
//	│   │   └── p1
//	│   │   └── p2
//	└── p3
func Tree(e Expr) string {
	var b strings.Builder
	writeTree(&b, e, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeTree(b *strings.Builder, e Expr, depth int) {
	b.WriteString(padding(depth))

	switch n := e.(type) {
	case *Variable:
		b.WriteString(n.Name)
		b.WriteByte('\n')
	case *Not:
		b.WriteString("Not\n")
		writeTree(b, n.X, depth+1)
	case *Grouped:
		b.WriteString("Grouped\n")
		writeTree(b, n.X, depth+1)
	default:
		b.WriteString(e.Kind().String())
		b.WriteByte('\n')
		l, r, _ := Operands(e)
		writeTree(b, l, depth+1)
		writeTree(b, r, depth+1)
	}
}
