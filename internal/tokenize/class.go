package tokenize

// Class groups n-gram tokens by the character classes they contain.
type Class int

const (
	// ClassPunctuation tokens contain no alphanumeric character.
	ClassPunctuation Class = iota
	// ClassAlphanumeric tokens consist only of [A-Za-z0-9].
	ClassAlphanumeric
	// ClassCombination tokens mix alphanumeric and other characters.
	ClassCombination
)

func (c Class) String() string {
	switch c {
	case ClassAlphanumeric:
		return "alphanumeric"
	case ClassCombination:
		return "combination"
	default:
		return "punctuation"
	}
}

// Classify places token in exactly one Class. The empty string is
// ClassPunctuation.
func Classify(token string) Class {
	var alnum, other bool
	for _, r := range token {
		if IsAlphanumeric(r) {
			alnum = true
		} else {
			other = true
		}
		if alnum && other {
			return ClassCombination
		}
	}
	if alnum {
		return ClassAlphanumeric
	}
	return ClassPunctuation
}
