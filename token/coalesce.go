package token

import "strings"

// Coalesce replaces every maximal run of Letter tokens in toks with a
// single Word token holding the run's text at the offset of its first
// letter.  Other tokens are passed through unchanged and in order.
//
// toks is not modified.
func Coalesce(toks []Token) []Token {
	res := make([]Token, 0, len(toks))
	var (
		word  strings.Builder
		start int
	)
	flush := func() {
		if word.Len() == 0 {
			return
		}
		res = append(res, Token{Category: Word, Text: word.String(), Offset: start})
		word.Reset()
	}
	for i := range toks {
		tok := toks[i]
		if tok.Category == Letter {
			if word.Len() == 0 {
				start = tok.Offset
			}
			word.WriteString(tok.Text)
			continue
		}
		flush()
		res = append(res, tok)
	}
	// only reached with a pending run when toks lacks EndOfInput
	flush()
	return res
}
