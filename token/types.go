package token

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type Category int

const (
	Ampersand Category = iota
	At
	Asterisk
	Backslash
	Backtick
	CarriageReturn
	Colon
	Comma
	CurlyBracketClose
	CurlyBracketOpen
	Digit
	Dot
	Dollar
	DoubleQuotes
	Equals
	EndOfInput
	Exclamation
	ForwardSlash
	GT
	Hashtag
	LT
	Letter
	Minus
	Newline
	ParenthesisClose
	ParenthesisOpen
	Pipe
	Plus
	QuestionMark
	Semicolon
	SingleQuote
	Space
	SquareBracketClose
	SquareBracketOpen
	Tab
	Tilde
	Unclassified
	Underscore
	Word

	numCategories
)

var categoryNames = [numCategories]string{
	Ampersand:          "Ampersand",
	At:                 "At",
	Asterisk:           "Asterisk",
	Backslash:          "Backslash",
	Backtick:           "Backtick",
	CarriageReturn:     "CarriageReturn",
	Colon:              "Colon",
	Comma:              "Comma",
	CurlyBracketClose:  "CurlyBracketClose",
	CurlyBracketOpen:   "CurlyBracketOpen",
	Digit:              "Digit",
	Dot:                "Dot",
	Dollar:             "Dollar",
	DoubleQuotes:       "DoubleQuotes",
	Equals:             "Equals",
	EndOfInput:         "EndOfInput",
	Exclamation:        "Exclamation",
	ForwardSlash:       "ForwardSlash",
	GT:                 "GT",
	Hashtag:            "Hashtag",
	LT:                 "LT",
	Letter:             "Letter",
	Minus:              "Minus",
	Newline:            "Newline",
	ParenthesisClose:   "ParenthesisClose",
	ParenthesisOpen:    "ParenthesisOpen",
	Pipe:               "Pipe",
	Plus:               "Plus",
	QuestionMark:       "QuestionMark",
	Semicolon:          "Semicolon",
	SingleQuote:        "SingleQuote",
	Space:              "Space",
	SquareBracketClose: "SquareBracketClose",
	SquareBracketOpen:  "SquareBracketOpen",
	Tab:                "Tab",
	Tilde:              "Tilde",
	Unclassified:       "Unclassified",
	Underscore:         "Underscore",
	Word:               "Word",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// Categories returns every category in declaration order.
func Categories() []Category {
	res := make([]Category, numCategories)
	for i := range res {
		res[i] = Category(i)
	}
	return res
}

// ParseCategory returns the category whose String form is name.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || c >= numCategories {
		return nil, fmt.Errorf("<err: %d is not a category>", int(c))
	}
	return []byte(categoryNames[c]), nil
}

func (c *Category) UnmarshalText(d []byte) error {
	pc, ok := ParseCategory(string(d))
	if !ok {
		return fmt.Errorf("unknown category %q", d)
	}
	*c = pc
	return nil
}

// IsSpace reports whether c is one of the whitespace categories.
func (c Category) IsSpace() bool {
	switch c {
	case Space, Newline, Tab, CarriageReturn:
		return true
	}
	return false
}

// IsPunct reports whether c is one of the single character
// punctuation or symbol categories.
func (c Category) IsPunct() bool {
	switch c {
	case Letter, Digit, Word, EndOfInput, Unclassified:
		return false
	}
	return c >= 0 && c < numCategories && !c.IsSpace()
}

type Token struct {
	Category Category
	Text     string
	Offset   int
}

func (t Token) String() string {
	return t.Text
}

// End returns the offset just past t.
func (t Token) End() int {
	return t.Offset + utf8.RuneCountInString(t.Text)
}

// Debug renders t as `Token(Category, "text", offset)`.
func (t Token) Debug() string {
	return fmt.Sprintf("Token(%s, %s, %d)", t.Category, strconv.Quote(t.Text), t.Offset)
}
