package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLines compares from and to line by line.  The result has one
// line per input line, prefixed by "-" for lines only in from, "+"
// for lines only in to and " " for common lines.  DiffLines returns
// "" when from and to are equal.
func DiffLines(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		var prefix string
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffEqual:
			prefix = " "
		}
		for _, ln := range splitLines(diff.Text) {
			buf.WriteString(prefix)
			buf.WriteString(ln)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Stat counts the inserted and deleted lines of a DiffLines result.
func Stat(diff string) (ins, del int) {
	for _, ln := range splitLines(diff) {
		switch {
		case strings.HasPrefix(ln, "+"):
			ins++
		case strings.HasPrefix(ln, "-"):
			del++
		}
	}
	return
}
