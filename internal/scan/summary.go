package scan

import (
	"math"
	"time"

	"corpstat/internal/aggregate"
)

// CombinedUnit names the single unit of a combined scan.
const CombinedUnit = "combined"

// UnitSummary describes one aggregator's worth of work: the whole scan in
// combined mode, or one language in per-language mode.
type UnitSummary struct {
	Name           string           `json:"name"`
	Languages      []string         `json:"languages"`
	FailedLangs    []string         `json:"failed_languages,omitempty"`
	OutputDir      string           `json:"output_dir"`
	Totals         aggregate.Totals `json:"totals"`
	Distinct       map[string]int   `json:"distinct"`
	Projects       int              `json:"projects"`
	Files          int              `json:"files"`
	Skipped        int              `json:"skipped"`
	BytesRead      int64            `json:"bytes_read"`
	BytesWritten   int64            `json:"bytes_written"`
	Written        int              `json:"reports_written"`
	Failed         []string         `json:"reports_failed,omitempty"`
	Error          string           `json:"error,omitempty"`
	Elapsed        time.Duration    `json:"-"`
	ElapsedSeconds float64          `json:"elapsed_seconds"`
}

// OK reports whether the unit produced its reports.
func (u UnitSummary) OK() bool {
	return u.Error == "" && len(u.Failed) == 0
}

// Summary is the outcome of Run.
type Summary struct {
	RunID          string           `json:"run_id"`
	PerLanguage    bool             `json:"per_language"`
	Units          []UnitSummary    `json:"units"`
	Totals         aggregate.Totals `json:"totals"`
	BytesRead      int64            `json:"bytes_read"`
	BytesWritten   int64            `json:"bytes_written"`
	Elapsed        time.Duration    `json:"-"`
	ElapsedSeconds float64          `json:"elapsed_seconds"`
}

// ReportsFailed returns the number of reports that could not be written.
func (s *Summary) ReportsFailed() int {
	n := 0
	for _, u := range s.Units {
		n += len(u.Failed)
	}
	return n
}

func (s *Summary) finish(start time.Time) {
	s.Totals = aggregate.Totals{}
	s.BytesRead, s.BytesWritten = 0, 0
	for _, u := range s.Units {
		s.BytesRead += u.BytesRead
		s.BytesWritten += u.BytesWritten
		s.Totals.Lines += u.Totals.Lines
		s.Totals.Words += u.Totals.Words
		s.Totals.Characters += u.Totals.Characters
	}
	s.Elapsed = time.Since(start)
	s.ElapsedSeconds = roundTo(s.Elapsed.Seconds(), 1)
}

func distinctCounts(agg *aggregate.Aggregator) map[string]int {
	out := make(map[string]int, len(aggregate.Domains()))
	for _, d := range aggregate.Domains() {
		out[d.String()] = agg.Distinct(d)
	}
	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
