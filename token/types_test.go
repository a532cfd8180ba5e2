package token

import (
	"strings"
	"testing"
)

func TestCategoryString(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories() {
		s := c.String()
		if s == "" || strings.HasPrefix(s, "Category(") {
			t.Errorf("category %d has no name", int(c))
		}
		if seen[s] {
			t.Errorf("duplicate name %q", s)
		}
		seen[s] = true
		pc, ok := ParseCategory(s)
		if !ok || pc != c {
			t.Errorf("ParseCategory(%q) = %v, %v", s, pc, ok)
		}
	}
	if len(seen) != 39 {
		t.Errorf("got %d categories, want 39", len(seen))
	}
	if got := Category(-1).String(); got != "Category(-1)" {
		t.Errorf("got %q", got)
	}
	if _, ok := ParseCategory("Symbol"); ok {
		t.Error("ParseCategory accepted an unknown name")
	}
}

func TestCategoryClasses(t *testing.T) {
	for _, c := range Categories() {
		if c.IsPunct() && c.IsSpace() {
			t.Errorf("%s is both punctuation and space", c)
		}
	}
	for _, c := range []Category{Space, Newline, Tab, CarriageReturn} {
		if !c.IsSpace() {
			t.Errorf("%s should be space", c)
		}
	}
	for _, c := range []Category{Letter, Digit, Word, EndOfInput, Unclassified, Space} {
		if c.IsPunct() {
			t.Errorf("%s should not be punctuation", c)
		}
	}
	n := 0
	for _, c := range Categories() {
		if c.IsPunct() {
			n++
		}
	}
	if n != len(punct) {
		t.Errorf("%d punctuation categories, %d punctuation characters", n, len(punct))
	}
}

func TestTokenDebug(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Word, "ab", 0}, `Token(Word, "ab", 0)`},
		{Token{Newline, "\n", 4}, `Token(Newline, "\n", 4)`},
		{Token{DoubleQuotes, `"`, 7}, `Token(DoubleQuotes, "\"", 7)`},
		{Token{EndOfInput, "", 9}, `Token(EndOfInput, "", 9)`},
	}
	for _, tt := range tests {
		if got := tt.tok.Debug(); got != tt.want {
			t.Errorf("Debug() = %s, want %s", got, tt.want)
		}
	}
	if got := DebugString(Tokenize("a")); got != "Token(Word, \"a\", 0)\nToken(EndOfInput, \"\", 1)\n" {
		t.Errorf("DebugString = %q", got)
	}
}

func TestCategoryText(t *testing.T) {
	d, err := Hashtag.MarshalText()
	if err != nil || string(d) != "Hashtag" {
		t.Fatalf("MarshalText = %q, %v", d, err)
	}
	var c Category
	if err := c.UnmarshalText([]byte("SquareBracketOpen")); err != nil || c != SquareBracketOpen {
		t.Errorf("UnmarshalText = %s, %v", c, err)
	}
	if err := c.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error")
	}
}
