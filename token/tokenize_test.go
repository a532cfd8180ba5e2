package token

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

var samples = []string{
	"",
	"a",
	"hi!",
	"ab3cd",
	"# Heading\n\nSome *emphasis* and `code`.\r\n",
	"[link](http://example.com/?q=1&r=2)",
	"tab\tseparated\tvalues",
	"naïve café – ☕",
	"\x00\x01\xff\xfe",
	"    indented_code ~~~ {x: $y} @user",
}

func checkInvariants(t *testing.T, s string, toks []Token) {
	t.Helper()
	if len(toks) == 0 {
		t.Fatalf("%q: empty token stream", s)
	}
	last := toks[len(toks)-1]
	want := Token{Category: EndOfInput, Offset: utf8.RuneCountInString(s)}
	if last != want {
		t.Errorf("%q: last token %s, want %s", s, last.Debug(), want.Debug())
	}
	for i := range toks[:len(toks)-1] {
		if toks[i].Category == EndOfInput {
			t.Errorf("%q: EndOfInput at position %d", s, i)
		}
		if toks[i].End() != toks[i+1].Offset {
			t.Errorf("%q: token %s not followed at its end by %s", s, toks[i].Debug(), toks[i+1].Debug())
		}
	}
	if got := Join(toks); got != s {
		t.Errorf("round trip: got %q, want %q", got, s)
	}
}

func TestTokenizeInvariants(t *testing.T) {
	for _, s := range samples {
		checkInvariants(t, s, Tokenize(s))
		checkInvariants(t, s, Classify(s))
	}
}

func TestTokenizeAllRunes(t *testing.T) {
	b := &strings.Builder{}
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		c := CategoryOf(r)
		if c < 0 || c >= numCategories || c == Word || c == EndOfInput {
			t.Fatalf("CategoryOf(%U) = %s", r, c)
		}
		if r >= utf8.RuneSelf && c != Unclassified {
			t.Fatalf("CategoryOf(%U) = %s, want Unclassified", r, c)
		}
		b.WriteRune(r)
	}
	s := b.String()
	cls := Classify(s)
	checkInvariants(t, s, cls)
	for i := range cls[:len(cls)-1] {
		if got := []rune(cls[i].Text); len(got) != 1 || CategoryOf(got[0]) != cls[i].Category {
			t.Fatalf("token %d: %s", i, cls[i].Debug())
		}
	}
	checkInvariants(t, s, Tokenize(s))
}

func TestTokenizeNoAdjacentWords(t *testing.T) {
	for _, s := range samples {
		toks := Tokenize(s)
		for i := range toks {
			if toks[i].Category == Letter {
				t.Errorf("%q: Letter %s survived coalescing", s, toks[i].Debug())
			}
			if i > 0 && toks[i].Category == Word && toks[i-1].Category == Word {
				t.Errorf("%q: adjacent words at %d", s, i)
			}
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	want := []Token{{Category: EndOfInput, Text: "", Offset: 0}}
	if diff := cmp.Diff(want, Classify("")); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, Tokenize("")); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestCounts(t *testing.T) {
	got := Counts(Tokenize("ab, cd."))
	want := map[Category]int{
		Word:       2,
		Comma:      1,
		Space:      1,
		Dot:        1,
		EndOfInput: 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Counts mismatch (-want +got):\n%s", diff)
	}
}

func FuzzTokenize(f *testing.F) {
	for _, s := range samples {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		cls := Classify(s)
		checkInvariants(t, s, cls)
		for i := range cls[:len(cls)-1] {
			if c := cls[i].Category; c == Word || c == EndOfInput {
				t.Fatalf("%q: Classify produced %s", s, cls[i].Debug())
			}
		}
		toks := Coalesce(cls)
		checkInvariants(t, s, toks)
		if diff := cmp.Diff(toks, Coalesce(toks)); diff != "" {
			t.Fatalf("%q: not idempotent:\n%s", s, diff)
		}
	})
}

func FuzzCategoryOf(f *testing.F) {
	f.Add(int32('a'))
	f.Add(int32(0x10FFFF))
	f.Add(int32(-1))
	f.Fuzz(func(t *testing.T, r int32) {
		c := CategoryOf(rune(r))
		if c < 0 || c >= numCategories || c == Word || c == EndOfInput {
			t.Fatalf("CategoryOf(%U) = %s", r, c)
		}
	})
}
