package token

import (
	"fmt"
	"io"
	"strings"
)

func PrintTokens(w io.Writer, toks []Token, msg string) {
	fmt.Fprintf(w, "%s tokens:\n", msg)
	for i := range toks {
		fmt.Fprintf(w, "\t%s\n", toks[i].Debug())
	}
}

// DebugString returns the debug listing of toks, one token per line.
func DebugString(toks []Token) string {
	b := &strings.Builder{}
	for i := range toks {
		b.WriteString(toks[i].Debug())
		b.WriteByte('\n')
	}
	return b.String()
}
