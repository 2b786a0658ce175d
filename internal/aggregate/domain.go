package aggregate

import "fmt"

// Domain identifies one of the counted token classes.
type Domain int

const (
	Characters Domain = iota
	Words
	Punctuation
	Pairs
	Triplets

	domainCount
)

var domainNames = [domainCount]string{
	Characters:  "characters",
	Words:       "words",
	Punctuation: "punctuation",
	Pairs:       "pairs",
	Triplets:    "triplets",
}

// Domains lists every domain in report order.
func Domains() []Domain {
	return []Domain{Characters, Words, Punctuation, Pairs, Triplets}
}

func (d Domain) String() string {
	if d < 0 || d >= domainCount {
		return fmt.Sprintf("domain(%d)", int(d))
	}
	return domainNames[d]
}

// NGram reports whether the domain counts fixed-width windows.
func (d Domain) NGram() bool {
	return d == Pairs || d == Triplets
}
