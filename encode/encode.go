package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/textlex/format"
	"github.com/signadot/textlex/token"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format format.Format
	lines  *token.Lines
	Color  func(token.Category, string) string
}

// Record is the JSON and YAML form of a token.
type Record struct {
	Category string `json:"category" yaml:"category"`
	Text     string `json:"text" yaml:"text"`
	Offset   int    `json:"offset" yaml:"offset"`
	Line     *int   `json:"line,omitempty" yaml:"line,omitempty"`
	Col      *int   `json:"col,omitempty" yaml:"col,omitempty"`
}

// yamlText is always written as a double quoted scalar, so that
// whitespace texts survive a YAML round trip.
type yamlText string

func (t yamlText) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

type yamlRecord struct {
	Category string   `yaml:"category"`
	Text     yamlText `yaml:"text"`
	Offset   int      `yaml:"offset"`
	Line     *int     `yaml:"line,omitempty"`
	Col      *int     `yaml:"col,omitempty"`
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) record(t *token.Token) Record {
	r := Record{
		Category: t.Category.String(),
		Text:     t.Text,
		Offset:   t.Offset,
	}
	if es.lines != nil {
		ln, col := es.lines.LineCol(t.Offset)
		r.Line, r.Col = &ln, &col
	}
	return r
}

func Encode(toks []token.Token, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.DebugFormat:
		return encodeDebug(toks, w, es)
	case format.JSONFormat:
		return encodeJSON(toks, w, es)
	case format.YAMLFormat:
		return encodeYAML(toks, w, es)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func encodeDebug(toks []token.Token, w io.Writer, es *EncState) error {
	for i := range toks {
		t := &toks[i]
		ln := t.Debug()
		if es.lines != nil {
			l, c := es.lines.LineCol(t.Offset)
			ln += fmt.Sprintf(" line=%d col=%d", l, c)
		}
		if es.Color != nil {
			ln = es.Color(t.Category, ln)
		}
		if err := writeString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeJSON(toks []token.Token, w io.Writer, es *EncState) error {
	if len(toks) == 0 {
		return writeString(w, "[]\n")
	}
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	buf.WriteString("[\n")
	for i := range toks {
		buf.WriteString("  ")
		if err := enc.Encode(es.record(&toks[i])); err != nil {
			return err
		}
		// Encode terminates each value with a newline
		buf.Truncate(buf.Len() - 1)
		if i < len(toks)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeYAML(toks []token.Token, w io.Writer, es *EncState) error {
	recs := make([]yamlRecord, len(toks))
	for i := range toks {
		r := es.record(&toks[i])
		recs[i] = yamlRecord{
			Category: r.Category,
			Text:     yamlText(r.Text),
			Offset:   r.Offset,
			Line:     r.Line,
			Col:      r.Col,
		}
	}
	d, err := yaml.Marshal(recs)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// EncodeCounts writes the number of tokens per category, in category
// order, omitting absent categories.
func EncodeCounts(counts map[token.Category]int, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	var ms yaml.MapSlice
	for _, c := range token.Categories() {
		n, ok := counts[c]
		if !ok {
			continue
		}
		ms = append(ms, yaml.MapItem{Key: c.String(), Value: n})
	}
	switch es.format {
	case format.DebugFormat:
		for _, item := range ms {
			ln := fmt.Sprintf("%s: %d", item.Key, item.Value)
			if es.Color != nil {
				c, _ := token.ParseCategory(item.Key.(string))
				ln = es.Color(c, ln)
			}
			if err := writeString(w, ln+"\n"); err != nil {
				return err
			}
		}
		return nil
	case format.JSONFormat:
		m := make(map[string]int, len(ms))
		for _, item := range ms {
			m[item.Key.(string)] = item.Value.(int)
		}
		d, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		return writeString(w, string(d)+"\n")
	case format.YAMLFormat:
		if len(ms) == 0 {
			return writeString(w, "{}\n")
		}
		d, err := yaml.Marshal(ms)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
