package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/textlex/encode"
	"github.com/signadot/textlex/libdiff"
	"github.com/signadot/textlex/textfile"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires 2 args, got %v", cli.ErrUsage, args)
	}
	same, err := checkGolden(cfg, cc.In, cc.Out, args[0], args[1])
	if err != nil {
		return err
	}
	if !same {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkGolden reports whether the encoded tokens of input equal the
// contents of golden, writing a line diff to w when they do not.
func checkGolden(cfg *CheckConfig, in io.Reader, w io.Writer, input, golden string) (bool, error) {
	inPath := textfile.Resolve(cfg.Dir, input)
	goldenPath := textfile.Resolve(cfg.Dir, golden)
	text, err := readInput(in, inPath)
	if err != nil {
		return false, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(lex(text), buf, cfg.encOpts(buf, nil)...); err != nil {
		return false, fmt.Errorf("error encoding %s: %w", inPath, err)
	}
	if cfg.Update {
		return true, textfile.Write(goldenPath, buf.Bytes())
	}
	want, err := textfile.Read(goldenPath)
	if err != nil {
		return false, err
	}
	diff := libdiff.DiffLines(want, buf.String())
	if diff == "" {
		return true, nil
	}
	ins, del := libdiff.Stat(diff)
	fmt.Fprintf(w, "--- %s\n+++ %s (%d+, %d-)\n%s", goldenPath, inPath, ins, del, diff)
	return false, nil
}
