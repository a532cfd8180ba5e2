package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/textlex/debug"
	"github.com/signadot/textlex/encode"
	"github.com/signadot/textlex/filter"
	"github.com/signadot/textlex/textfile"
	"github.com/signadot/textlex/token"

	"github.com/scott-cotton/cli"
)

func tokenize(cfg *TokenizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokenize.Parse(cc, args)
	if err != nil {
		cfg.Tokenize.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return tokenizeArgs(cfg, cc.In, cc.Out, args)
}

func tokenizeArgs(cfg *TokenizeConfig, in io.Reader, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: tokenize requires at least one file", cli.ErrUsage)
	}
	if cfg.Out != "" && cfg.Out != "-" && len(args) > 1 {
		return fmt.Errorf("%w: -o %s given with %d inputs", cli.ErrUsage, cfg.Out, len(args))
	}
	var f *filter.Filter
	if cfg.Where != "" {
		var err error
		f, err = filter.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	// every input is read and encoded before anything is written
	outs := make([]output, 0, len(args))
	for _, arg := range args {
		o, err := tokenizeArg(cfg, f, in, out, arg)
		if err != nil {
			return err
		}
		outs = append(outs, o)
	}
	for i := range outs {
		o := &outs[i]
		if o.dst == "-" {
			if _, err := out.Write(o.data); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "Tokenizing %s\n", o.path)
		if err := textfile.Write(o.dst, o.data); err != nil {
			return err
		}
	}
	return nil
}

type output struct {
	path string
	dst  string
	data []byte
}

func tokenizeArg(cfg *TokenizeConfig, f *filter.Filter, in io.Reader, out io.Writer, arg string) (output, error) {
	path := textfile.Resolve(cfg.Dir, arg)
	text, err := readInput(in, path)
	if err != nil {
		return output{}, err
	}
	toks := lex(text)
	var lines *token.Lines
	if cfg.Lines {
		lines = token.NewLines(toks)
	}
	if f != nil {
		toks, err = f.Apply(toks)
		if err != nil {
			return output{}, err
		}
	}
	dst := cfg.Out
	if dst == "" {
		dst = textfile.OutputPath(path, cfg.format())
		if path == "-" {
			dst = "-"
		}
	}
	buf := bytes.NewBuffer(nil)
	var w io.Writer = buf
	if dst == "-" {
		// colors follow the terminal the data ends up on
		w = out
	}
	if err := encode.Encode(toks, buf, cfg.encOpts(w, lines)...); err != nil {
		return output{}, fmt.Errorf("error encoding %s: %w", path, err)
	}
	return output{path: path, dst: dst, data: buf.Bytes()}, nil
}

func readInput(in io.Reader, path string) (string, error) {
	if path != "-" {
		return textfile.Read(path)
	}
	d, err := io.ReadAll(in)
	if err != nil {
		return "", &textfile.IOError{Op: "read", Path: path, Err: err}
	}
	return string(d), nil
}

func lex(text string) []token.Token {
	toks := token.Classify(text)
	if debug.Classify() {
		token.PrintTokens(os.Stderr, toks, "classified")
	}
	toks = token.Coalesce(toks)
	if debug.Coalesce() {
		debug.Logf("coalesced:\n%s", toks)
	}
	return toks
}
