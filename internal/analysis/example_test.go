package analysis_test

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/propcheck/internal/analysis"
)

func ExampleAnalyzer_Analyze() {
	a := analysis.New(analysis.DefaultLimits())

	for _, formula := range []string{"p1 & ~p1", "(p1 & p2) -> (p1 | p2)", "(p1 | p2) & p3"} {
		report, err := a.Analyze(context.Background(), formula)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s: %s %v\n", formula, report.Classification, report.Variables)
	}
	// Output:
	// p1 & ~p1: Contradiction [p1]
	// (p1 & p2) -> (p1 | p2): Tautology [p1 p2]
	// (p1 | p2) & p3: Contingent [p1 p2 p3]
}

func ExampleParseAssignment() {
	a, err := analysis.ParseAssignment("p1=true,p2=0")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a["p1"], a["p2"])
	// Output: true false
}
