// Package tokenize splits corpus lines into the token classes counted by
// corpstat.
//
// A raw line is first normalized (whitespace runs collapse to one space and
// leading whitespace is dropped), then split on single spaces into sequences.
// Each sequence yields alphanumeric words, punctuation runs and fixed-width
// n-grams. Character classes are ASCII-only: [A-Za-z0-9] is alphanumeric and
// every other rune, including non-ASCII letters, is punctuation.
//
// Every function in this package is pure and total over arbitrary strings.
package tokenize
