package frequency

import "sort"

// Rank orders the table by descending count. Tokens with equal counts keep
// their first-seen order.
func Rank(t *Table) []Entry {
	if t == nil {
		return nil
	}
	return RankEntries(t.Entries())
}

// RankEntries returns a copy of entries sorted by descending count, stable
// for equal counts. Ranking an already ranked slice returns it unchanged.
func RankEntries(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Sum adds up the counts in entries.
func Sum(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	return total
}
