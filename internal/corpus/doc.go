// Package corpus walks a corpus root laid out as
//
//	<root>/<language>/<project>/**/<file>
//
// and hands decoded file contents to a caller-supplied sink. Directory
// listings are consumed in name order so repeated scans see text in the same
// sequence.
package corpus
