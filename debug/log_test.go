package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/signadot/textlex/token"
)

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	out = buf
	defer func() { out = os.Stderr }()

	Logf("toks:\n%s", token.Tokenize("a!"))
	want := "toks:\nToken(Word, \"a\", 0)\nToken(Exclamation, \"!\", 1)\nToken(EndOfInput, \"\", 2)\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	Logf("%s %d\n", token.Token{Category: token.Digit, Text: "7", Offset: 3}, 4)
	if got := buf.String(); got != "Token(Digit, \"7\", 3) 4\n" {
		t.Errorf("got %q", got)
	}

	buf.Reset()
	Logf("%s", map[token.Category]int{token.Word: 2})
	if got := buf.String(); !strings.Contains(got, `"Word": 2`) {
		t.Errorf("got %q", got)
	}
}
