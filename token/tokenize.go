package token

// Tokenize classifies text and coalesces letter runs into words.
func Tokenize(text string) []Token {
	return Coalesce(Classify(text))
}

// Counts returns the number of tokens of each category present in toks.
func Counts(toks []Token) map[Category]int {
	res := map[Category]int{}
	for i := range toks {
		res[toks[i].Category]++
	}
	return res
}

// Join concatenates the text of toks.
func Join(toks []Token) string {
	n := 0
	for i := range toks {
		n += len(toks[i].Text)
	}
	buf := make([]byte, 0, n)
	for i := range toks {
		buf = append(buf, toks[i].Text...)
	}
	return string(buf)
}
