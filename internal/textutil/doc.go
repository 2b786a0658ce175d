// Package textutil provides filename sanitization for paths derived from
// corpus directory names.
package textutil
