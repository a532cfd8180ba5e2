package encode

import (
	"github.com/signadot/textlex/format"
	"github.com/signadot/textlex/token"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeLines adds line and column information computed with l.  l
// should be built from the complete token stream, so that it remains
// valid when the encoded stream is filtered.
func EncodeLines(l *token.Lines) EncodeOption {
	return func(es *EncState) { es.lines = l }
}
