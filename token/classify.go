package token

import "unicode/utf8"

var punct = map[rune]Category{
	'&':  Ampersand,
	'@':  At,
	'*':  Asterisk,
	'\\': Backslash,
	'`':  Backtick,
	':':  Colon,
	',':  Comma,
	'}':  CurlyBracketClose,
	'{':  CurlyBracketOpen,
	'.':  Dot,
	'$':  Dollar,
	'"':  DoubleQuotes,
	'=':  Equals,
	'!':  Exclamation,
	'/':  ForwardSlash,
	'>':  GT,
	'#':  Hashtag,
	'<':  LT,
	'-':  Minus,
	')':  ParenthesisClose,
	'(':  ParenthesisOpen,
	'|':  Pipe,
	'+':  Plus,
	'?':  QuestionMark,
	';':  Semicolon,
	'\'': SingleQuote,
	']':  SquareBracketClose,
	'[':  SquareBracketOpen,
	'~':  Tilde,
	'_':  Underscore,
}

// CategoryOf classifies a single character.  It never returns
// Word or EndOfInput.
func CategoryOf(r rune) Category {
	if c, ok := punct[r]; ok {
		return c
	}
	switch {
	case r == ' ':
		return Space
	case r == '\n':
		return Newline
	case r == '\t':
		return Tab
	case r == '\r':
		return CarriageReturn
	case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z':
		return Letter
	case '0' <= r && r <= '9':
		return Digit
	default:
		return Unclassified
	}
}

// Classify returns one token per character of text followed by a single
// EndOfInput token whose offset is the character count of text.
//
// A byte which is not valid UTF-8 counts as one Unclassified character
// and keeps its original byte as text.
func Classify(text string) []Token {
	res := make([]Token, 0, utf8.RuneCountInString(text)+1)
	n := 0
	for i, r := range text {
		w := utf8.RuneLen(r)
		if r == utf8.RuneError {
			_, w = utf8.DecodeRuneInString(text[i:])
		}
		res = append(res, Token{
			Category: CategoryOf(r),
			Text:     text[i : i+w],
			Offset:   n,
		})
		n++
	}
	return append(res, Token{Category: EndOfInput, Offset: n})
}
