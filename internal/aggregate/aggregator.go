package aggregate

import (
	"strings"

	"corpstat/internal/frequency"
	"corpstat/internal/tokenize"
)

const (
	pairWidth    = 2
	tripletWidth = 3
)

// Totals are the running counters of a scan.
type Totals struct {
	Lines      int `json:"lines"`
	Words      int `json:"words"`
	Characters int `json:"characters"`
}

// Aggregator accumulates one frequency table per domain. It is not safe for
// concurrent use; parallel scans each need their own Aggregator.
type Aggregator struct {
	tables [domainCount]*frequency.Table
	totals Totals
}

// New returns an Aggregator with empty tables.
func New() *Aggregator {
	a := &Aggregator{}
	for _, d := range Domains() {
		a.tables[d] = frequency.NewTable(d.String())
	}
	return a
}

// IngestBlock splits text on newlines and ingests every resulting line. Text
// ending in a newline contributes a final empty line.
func (a *Aggregator) IngestBlock(text string) {
	for _, line := range strings.Split(text, "\n") {
		a.IngestLine(line)
	}
}

// IngestLine counts one newline-free line.
func (a *Aggregator) IngestLine(raw string) {
	a.totals.Lines++
	a.totals.Characters += tokenize.Length(raw)

	line := tokenize.Parse(raw)
	chars := a.tables[Characters]
	for _, r := range line.Normalized {
		chars.Add(string(r))
	}

	for _, seq := range line.Sequences {
		if seq == "" {
			continue
		}
		for _, word := range tokenize.Words(seq) {
			a.tables[Words].Add(word)
			a.totals.Words++
		}
		for _, punct := range tokenize.Punctuation(seq) {
			a.tables[Punctuation].Add(punct)
		}
		for _, pair := range tokenize.NGrams(seq, pairWidth) {
			a.tables[Pairs].Add(pair)
		}
		for _, triplet := range tokenize.NGrams(seq, tripletWidth) {
			a.tables[Triplets].Add(triplet)
		}
	}
}

// Totals returns the running counters.
func (a *Aggregator) Totals() Totals {
	return a.totals
}

// Ranked returns the domain's tokens by descending count.
func (a *Aggregator) Ranked(d Domain) []frequency.Entry {
	if t := a.table(d); t != nil {
		return frequency.Rank(t)
	}
	return nil
}

// Distinct returns the number of distinct tokens seen in the domain.
func (a *Aggregator) Distinct(d Domain) int {
	if t := a.table(d); t != nil {
		return t.Len()
	}
	return 0
}

// Count returns the occurrences of token in the domain.
func (a *Aggregator) Count(d Domain, token string) int {
	if t := a.table(d); t != nil {
		return t.Count(token)
	}
	return 0
}

// Sum returns the total occurrences recorded in the domain.
func (a *Aggregator) Sum(d Domain) int {
	if t := a.table(d); t != nil {
		return t.Total()
	}
	return 0
}

func (a *Aggregator) table(d Domain) *frequency.Table {
	if d < 0 || d >= domainCount {
		return nil
	}
	return a.tables[d]
}
