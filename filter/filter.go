// Package filter selects tokens from a stream with expr-lang expressions.
//
// An expression sees the fields of [Env] for each token, for example
//
//	Category == "Word" && Len > 3
//	isPunct(Category) || Offset < 10
package filter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/signadot/textlex/debug"
	"github.com/signadot/textlex/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrNotBool = errors.New("filter expression did not evaluate to a bool")

// Env is the environment an expression is evaluated against.
type Env struct {
	Category string
	Text     string
	Offset   int
	// Len is the length of Text in characters.
	Len int
}

func envOf(t *token.Token) Env {
	return Env{
		Category: t.Category.String(),
		Text:     t.Text,
		Offset:   t.Offset,
		Len:      utf8.RuneCountInString(t.Text),
	}
}

type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

// Match reports whether t satisfies the filter.
func (f *Filter) Match(t *token.Token) (bool, error) {
	res, err := expr.Run(f.prg, envOf(t))
	if err != nil {
		return false, fmt.Errorf("error running filter %q on %s: %w", f.src, t.Debug(), err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T", ErrNotBool, f.src, res)
	}
	return b, nil
}

// Apply returns the tokens of toks which satisfy the filter, in order.
func (f *Filter) Apply(toks []token.Token) ([]token.Token, error) {
	res := make([]token.Token, 0, len(toks))
	for i := range toks {
		ok, err := f.Match(&toks[i])
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, toks[i])
		}
	}
	if debug.Filter() {
		debug.Logf("filter %q kept %d of %d tokens\n", f.src, len(res), len(toks))
	}
	return res, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.Function("isPunct", func(params ...any) (any, error) {
			return categoryArg(params[0]).IsPunct(), nil
		},
			new(func(string) bool)),
		expr.Function("isSpace", func(params ...any) (any, error) {
			return categoryArg(params[0]).IsSpace(), nil
		},
			new(func(string) bool)),
	}
}

func categoryArg(p any) token.Category {
	c, ok := token.ParseCategory(p.(string))
	if !ok {
		return token.Unclassified
	}
	return c
}
