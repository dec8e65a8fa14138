package suite

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Formula Suite: %s ===\n\n", r.Suite)

	header := []string{"Case", "Formula", "Expected", "Got", "p50", "p95", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Cases {
		status := "PASS"
		if !e.Passed {
			status = "FAIL"
		}
		row := []string{
			e.ID,
			e.Formula,
			e.Expected,
			e.Got,
			fmtDuration(e.Latency.P50),
			fmtDuration(e.Latency.P95),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	s := r.Summary
	fmt.Fprintf(tw, "\nPassed %d/%d (%.2f%%), mean latency %s\n", s.Passed, s.Total, s.PassRate*100, fmtDuration(s.Latency.Mean))

	tw.Flush()
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
