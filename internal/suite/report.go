package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/propcheck/pkg/utils"
	"github.com/google/uuid"
)

type Report struct {
	RunID     uuid.UUID       `json:"run_id"`
	Suite     string          `json:"suite"`
	Timestamp time.Time       `json:"timestamp"`
	Env       EnvironmentInfo `json:"environment"`
	Summary   Summary         `json:"summary"`
	Cases     []Entry         `json:"cases"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	Total    int          `json:"total"`
	Passed   int          `json:"passed"`
	Failed   int          `json:"failed"`
	PassRate float64      `json:"pass_rate"`
	Latency  LatencyStats `json:"latency"`
}

type Entry struct {
	ID       string       `json:"id"`
	Formula  string       `json:"formula"`
	Expected string       `json:"expected"`
	Got      string       `json:"got"`
	Passed   bool         `json:"passed"`
	Latency  LatencyStats `json:"latency"`
	Error    string       `json:"error,omitempty"`
}

func Generate(res *Result) *Report {
	r := &Report{
		RunID:     uuid.New(),
		Suite:     res.SuiteName,
		Timestamp: time.Now().UTC(),
		Env:       NewEnvironmentInfo(),
		Cases:     make([]Entry, 0, len(res.Cases)),
	}

	var means []time.Duration
	for _, c := range res.Cases {
		entry := Entry{
			ID:       c.ID,
			Formula:  c.Formula,
			Expected: c.Expected,
			Got:      c.Got,
			Passed:   c.Passed,
			Latency:  c.Latency,
		}
		if c.Error != nil {
			entry.Error = c.Error.Error()
		}
		r.Cases = append(r.Cases, entry)

		if !c.Latency.IsZero() {
			means = append(means, c.Latency.Mean)
		}
	}

	r.Summary = Summary{
		Total:   len(res.Cases),
		Passed:  res.Passed(),
		Latency: computeLatencyStats(means),
	}
	r.Summary.Failed = r.Summary.Total - r.Summary.Passed
	if r.Summary.Total > 0 {
		r.Summary.PassRate = utils.RoundDecimal(float64(r.Summary.Passed)/float64(r.Summary.Total), 4)
	}

	return r
}

func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
