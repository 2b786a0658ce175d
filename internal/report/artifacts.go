package report

import (
	"corpstat/internal/aggregate"
	"corpstat/internal/frequency"
	"corpstat/internal/tokenize"
)

// Variant selects which n-gram tokens a report keeps.
type Variant int

const (
	// VariantAll keeps every token.
	VariantAll Variant = iota
	// VariantAlphanumerics keeps tokens made only of [A-Za-z0-9].
	VariantAlphanumerics
	// VariantCombinations keeps tokens mixing alphanumeric and other characters.
	VariantCombinations
)

func (v Variant) suffix() string {
	switch v {
	case VariantAlphanumerics:
		return "_alphanumerics"
	case VariantCombinations:
		return "_combinations"
	default:
		return ""
	}
}

// Source exposes ranked domains. *aggregate.Aggregator satisfies it.
type Source interface {
	Ranked(d aggregate.Domain) []frequency.Entry
}

// Artifact is one named report ready to be persisted.
type Artifact struct {
	Domain  aggregate.Domain
	Variant Variant
	Report  Report
}

// Name is the artifact name without extension, e.g. "pairs_combinations".
func (a Artifact) Name() string {
	return a.Domain.String() + a.Variant.suffix()
}

// FileName is the report file name, e.g. "pairs_combinations.txt".
func (a Artifact) FileName() string {
	return a.Name() + ".txt"
}

// Text renders the artifact's report.
func (a Artifact) Text() string {
	return a.Report.Render()
}

// Artifacts builds the nine reports for src: one per domain plus the
// alphanumeric and combination views of pairs and triplets.
func Artifacts(src Source) []Artifact {
	var out []Artifact
	for _, d := range aggregate.Domains() {
		ranked := src.Ranked(d)
		out = append(out, Artifact{Domain: d, Variant: VariantAll, Report: Build(ranked)})
		if !d.NGram() {
			continue
		}
		out = append(out,
			Artifact{Domain: d, Variant: VariantAlphanumerics, Report: Build(Alphanumerics(ranked))},
			Artifact{Domain: d, Variant: VariantCombinations, Report: Build(Combinations(ranked))},
		)
	}
	return out
}

// Alphanumerics keeps the entries whose token is entirely [A-Za-z0-9].
func Alphanumerics(ranked []frequency.Entry) []frequency.Entry {
	return filter(ranked, tokenize.ClassAlphanumeric)
}

// Combinations keeps the entries whose token mixes alphanumeric and other
// characters.
func Combinations(ranked []frequency.Entry) []frequency.Entry {
	return filter(ranked, tokenize.ClassCombination)
}

func filter(ranked []frequency.Entry, class tokenize.Class) []frequency.Entry {
	var out []frequency.Entry
	for _, e := range ranked {
		if e.Token != "" && tokenize.Classify(e.Token) == class {
			out = append(out, e)
		}
	}
	return out
}
