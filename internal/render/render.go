// Package render writes analysis results for terminals.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/propcheck/internal/analysis"
	"github.com/DjordjeVuckovic/propcheck/internal/classify"
	"github.com/fatih/color"
)

var (
	tautologyColor     = color.New(color.FgGreen, color.Bold)
	contradictionColor = color.New(color.FgRed, color.Bold)
	contingentColor    = color.New(color.FgYellow, color.Bold)
)

// Classification returns the name of c, colored when the output supports it.
func Classification(c classify.Classification) string {
	switch c {
	case classify.Tautology:
		return tautologyColor.Sprint(c)
	case classify.Contradiction:
		return contradictionColor.Sprint(c)
	case classify.Contingent:
		return contingentColor.Sprint(c)
	default:
		return c.String()
	}
}

func WriteTree(w io.Writer, p *analysis.Parsed) {
	fmt.Fprintf(w, "Formula: %s\n", p.Formula)
	fmt.Fprintf(w, "Variables: %s\n\n", strings.Join(p.Variables, ", "))
	fmt.Fprintln(w, p.Tree)
}

// WriteTable prints one line per row with a column per variable and the
// result last.
func WriteTable(w io.Writer, r *analysis.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := append(append([]string{}, r.Variables...), "result")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, row := range r.Rows {
		cells := make([]string, 0, len(header))
		for _, name := range r.Variables {
			cells = append(cells, fmtBool(row.Assignment[name]))
		}
		cells = append(cells, fmtBool(row.Result))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	tw.Flush()
}

func WriteReport(w io.Writer, r *analysis.Report) {
	WriteTree(w, &r.Parsed)
	fmt.Fprintln(w)
	WriteTable(w, r)
	fmt.Fprintf(w, "\n%s (%d of %d rows true)\n", Classification(r.Classification), r.TrueRows, len(r.Rows))
}

func WriteSat(w io.Writer, r *analysis.SatReport) {
	fmt.Fprintf(w, "%s\n", Classification(r.Classification))
	if r.Witness != nil {
		fmt.Fprintf(w, "witness:        %s\n", fmtAssignment(r.Witness, r.Variables))
	}
	if r.Counterexample != nil {
		fmt.Fprintf(w, "counterexample: %s\n", fmtAssignment(r.Counterexample, r.Variables))
	}
}

func fmtAssignment(a map[string]bool, order []string) string {
	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, fmt.Sprintf("%s=%s", name, fmtBool(a[name])))
	}
	return strings.Join(parts, " ")
}

func fmtBool(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
