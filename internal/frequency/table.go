// Package frequency provides insertion-ordered token counters and ranking.
package frequency

// Entry is a token with its occurrence count.
type Entry struct {
	Token string
	Count int
}

// Table counts token occurrences and remembers the order in which tokens
// were first seen. The zero value is not usable; call NewTable.
type Table struct {
	name    string
	index   map[string]int
	entries []Entry
	total   int
}

// NewTable returns an empty table labelled with name.
func NewTable(name string) *Table {
	return &Table{
		name:  name,
		index: make(map[string]int),
	}
}

// Name returns the label the table was created with.
func (t *Table) Name() string {
	return t.name
}

// Add records one occurrence of token.
func (t *Table) Add(token string) {
	t.AddN(token, 1)
}

// AddN records n occurrences of token. Non-positive n is ignored so counts
// never decrease and never reach zero.
func (t *Table) AddN(token string, n int) {
	if n <= 0 {
		return
	}
	t.total += n
	if i, ok := t.index[token]; ok {
		t.entries[i].Count += n
		return
	}
	t.index[token] = len(t.entries)
	t.entries = append(t.entries, Entry{Token: token, Count: n})
}

// Count returns the occurrences recorded for token.
func (t *Table) Count(token string) int {
	if i, ok := t.index[token]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.entries)
}

// Total returns the sum of all counts.
func (t *Table) Total() int {
	return t.total
}

// Entries returns a copy of the table in first-seen order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
