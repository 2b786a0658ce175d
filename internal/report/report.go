package report

import (
	"math"
	"strconv"
	"strings"

	"corpstat/internal/frequency"
)

// Divider separates entries whose counts fall below the next order of
// magnitude.
const Divider = "----------"

const percentageScale = 100000

// Line is one rendered row of a report: either an entry or a divider.
type Line struct {
	Divider    bool
	Token      string
	Count      int
	Percentage float64
}

// Report is a ranked domain annotated with cumulative percentages.
type Report struct {
	Lines []Line
	Total int
}

// Build turns a ranked sequence into a report. The divider threshold starts
// at a tenth of the first count and drops by a factor of ten each time an
// entry falls below it. The threshold moves one step per entry, so a sudden
// drop of several orders of magnitude still yields a single divider.
func Build(ranked []frequency.Entry) Report {
	if len(ranked) == 0 {
		return Report{}
	}

	total := frequency.Sum(ranked)
	limit := float64(ranked[0].Count) / 10
	lines := make([]Line, 0, len(ranked)+8)
	cumulative := 0
	for _, entry := range ranked {
		if float64(entry.Count) < limit {
			lines = append(lines, Line{Divider: true})
			limit /= 10
		}
		cumulative += entry.Count
		lines = append(lines, Line{
			Token:      entry.Token,
			Count:      entry.Count,
			Percentage: cumulativePercentage(cumulative, total),
		})
	}
	return Report{Lines: lines, Total: total}
}

func cumulativePercentage(cumulative, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(cumulative)/float64(total)*percentageScale) / percentageScale
}

// Empty reports whether the report has no entries.
func (r Report) Empty() bool {
	return len(r.Lines) == 0
}

// Entries returns the number of non-divider lines.
func (r Report) Entries() int {
	n := 0
	for _, line := range r.Lines {
		if !line.Divider {
			n++
		}
	}
	return n
}

// Dividers returns the number of divider lines.
func (r Report) Dividers() int {
	return len(r.Lines) - r.Entries()
}

// Render formats the report as newline-terminated rows of
// "token count percentage", with divider rows in between.
func (r Report) Render() string {
	var b strings.Builder
	for _, line := range r.Lines {
		if line.Divider {
			b.WriteString(Divider)
			b.WriteByte('\n')
			continue
		}
		b.WriteString(line.Token)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(line.Count))
		b.WriteByte(' ')
		b.WriteString(FormatPercentage(line.Percentage))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatPercentage prints p with the fewest digits that round-trip.
func FormatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
