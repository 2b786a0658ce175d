package aggregate

import (
	"reflect"
	"strings"
	"testing"

	"corpstat/internal/frequency"
	"corpstat/internal/tokenize"
)

func TestIngestLineExample(t *testing.T) {
	agg := New()
	agg.IngestLine("abc, abc!")

	totals := agg.Totals()
	if totals.Lines != 1 || totals.Words != 2 || totals.Characters != 9 {
		t.Fatalf("unexpected totals: %+v", totals)
	}

	checks := []struct {
		domain Domain
		token  string
		want   int
	}{
		{Words, "abc", 2},
		{Punctuation, ",", 1},
		{Punctuation, "!", 1},
		{Pairs, "ab", 2},
		{Pairs, "bc", 2},
		{Pairs, "c,", 1},
		{Pairs, "c!", 1},
		{Triplets, "abc", 2},
		{Triplets, "bc,", 1},
		{Triplets, "bc!", 1},
		{Characters, " ", 1},
		{Characters, "a", 2},
	}
	for _, c := range checks {
		if got := agg.Count(c.domain, c.token); got != c.want {
			t.Fatalf("%s[%q] = %d, want %d", c.domain, c.token, got, c.want)
		}
	}
	if agg.Distinct(Words) != 1 {
		t.Fatalf("expected one distinct word, got %d", agg.Distinct(Words))
	}
}

func TestSingleCharacterRunsAreNotWords(t *testing.T) {
	agg := New()
	agg.IngestLine("a bb")

	if agg.Totals().Words != 1 {
		t.Fatalf("Words = %d, want 1", agg.Totals().Words)
	}
	if agg.Count(Words, "a") != 0 || agg.Count(Words, "bb") != 1 {
		t.Fatalf("unexpected word table: %v", agg.Ranked(Words))
	}
	want := []frequency.Entry{{Token: "b", Count: 2}, {Token: "a", Count: 1}, {Token: " ", Count: 1}}
	if got := agg.Ranked(Characters); !reflect.DeepEqual(got, want) {
		t.Fatalf("characters = %v, want %v", got, want)
	}
}

func TestIngestBlockKeepsTrailingEmptyLine(t *testing.T) {
	agg := New()
	agg.IngestBlock("foo\nbar\n")
	if agg.Totals().Lines != 3 {
		t.Fatalf("Lines = %d, want 3", agg.Totals().Lines)
	}
	if agg.Totals().Characters != 6 {
		t.Fatalf("Characters = %d, want 6", agg.Totals().Characters)
	}
}

func TestCharacterTotalUsesRawLength(t *testing.T) {
	agg := New()
	agg.IngestLine("   x    y\t")

	if got := agg.Totals().Characters; got != 10 {
		t.Fatalf("Characters = %d, want raw length 10", got)
	}
	if got := agg.Sum(Characters); got != len("x y ") {
		t.Fatalf("character table sum = %d, want normalized length %d", got, len("x y "))
	}
}

func TestCharacterDeltasMatchNormalizedLength(t *testing.T) {
	lines := []string{
		"",
		"  leading",
		"trailing   ",
		"tabs\tand\t\tspaces",
		"unicode: naïve café ∞",
		"x",
	}
	for _, line := range lines {
		agg := New()
		agg.IngestLine(line)
		want := tokenize.Length(tokenize.Normalize(line))
		if got := agg.Sum(Characters); got != want {
			t.Fatalf("line %q: character deltas %d, want %d", line, got, want)
		}
	}
}

func TestWordTotalMatchesQualifyingRuns(t *testing.T) {
	text := strings.Join([]string{
		"func main() { fmt.Println(\"hi\", 1, 22) }",
		"a b c dd ee_ff",
		"",
		"x1 y 2z",
	}, "\n")

	agg := New()
	agg.IngestBlock(text)

	want := 0
	for _, line := range strings.Split(text, "\n") {
		for _, run := range tokenize.AlphanumericRuns(line) {
			if len(run) > 1 {
				want++
			}
		}
	}
	if got := agg.Totals().Words; got != want {
		t.Fatalf("Words = %d, want %d", got, want)
	}
	if got := agg.Sum(Words); got != want {
		t.Fatalf("word table sum = %d, want %d", got, want)
	}
}

func TestEmptyAggregator(t *testing.T) {
	agg := New()
	if agg.Totals() != (Totals{}) {
		t.Fatalf("expected zero totals, got %+v", agg.Totals())
	}
	for _, d := range Domains() {
		if len(agg.Ranked(d)) != 0 {
			t.Fatalf("expected empty %s table", d)
		}
	}
}

func TestAggregatorsAreIndependent(t *testing.T) {
	first := New()
	second := New()
	first.IngestLine("shared tokens")
	if second.Totals().Lines != 0 || second.Distinct(Words) != 0 {
		t.Fatalf("second aggregator observed first aggregator's input")
	}
}

func TestUnknownDomainIsEmpty(t *testing.T) {
	agg := New()
	agg.IngestLine("abc")
	if agg.Ranked(Domain(42)) != nil || agg.Distinct(Domain(-1)) != 0 || agg.Count(Domain(9), "abc") != 0 {
		t.Fatalf("expected unknown domains to be empty")
	}
}

func TestDomainNames(t *testing.T) {
	want := []string{"characters", "words", "punctuation", "pairs", "triplets"}
	for i, d := range Domains() {
		if d.String() != want[i] {
			t.Fatalf("Domains()[%d] = %q, want %q", i, d, want[i])
		}
	}
	if got := Domain(42).String(); got != "domain(42)" {
		t.Fatalf("unknown domain name = %q", got)
	}
	if !Pairs.NGram() || !Triplets.NGram() || Words.NGram() {
		t.Fatal("unexpected NGram classification")
	}
}
