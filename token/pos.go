package token

import "sort"

// Lines indexes the offsets of Newline tokens so that character
// offsets can be mapped to line and column.
type Lines struct {
	n []int
}

func NewLines(toks []Token) *Lines {
	l := &Lines{}
	for i := range toks {
		if toks[i].Category == Newline {
			l.n = append(l.n, toks[i].Offset)
		}
	}
	return l
}

// LineCol returns the zero based line and column of off.  A newline
// belongs to the line it terminates.
func (l *Lines) LineCol(off int) (int, int) {
	N := len(l.n)
	di := sort.Search(N, func(i int) bool {
		return l.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - l.n[di-1] - 1
}
