package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/textlex/token"
)

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, map[token.Category]int:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case []token.Token:
			args[i] = token.DebugString(x)
		case token.Token:
			args[i] = x.Debug()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
