package encode

import (
	"strings"

	"github.com/signadot/textlex/token"

	"github.com/fatih/color"
)

type Class int

const (
	PunctClass Class = iota
	SpaceClass
	WordClass
	DigitClass
	UnclassifiedClass
	EndClass
)

func ClassOf(c token.Category) Class {
	switch {
	case c.IsPunct():
		return PunctClass
	case c.IsSpace():
		return SpaceClass
	case c == token.Word, c == token.Letter:
		return WordClass
	case c == token.Digit:
		return DigitClass
	case c == token.EndOfInput:
		return EndClass
	default:
		return UnclassifiedClass
	}
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Class]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Class]func(string, ...any) string{
			PunctClass:        color.RGB(255, 0, 196).SprintfFunc(),
			SpaceClass:        color.RGB(96, 96, 96).SprintfFunc(),
			WordClass:         color.RGB(8, 196, 16).SprintfFunc(),
			DigitClass:        color.RGB(128, 216, 236).SprintfFunc(),
			UnclassifiedClass: color.RGB(196, 96, 16).SprintfFunc(),
			EndClass:          color.New(color.FgBlue).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(cat token.Category, s string) string {
	return c.Get(ClassOf(cat))(s)
}

func (c *Colors) Get(cl Class) func(string, ...any) string {
	f := c.Map[cl]
	if f == nil {
		return c.Default
	}
	return f
}
