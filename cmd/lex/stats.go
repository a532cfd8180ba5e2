package main

import (
	"fmt"
	"io"

	"github.com/signadot/textlex/encode"
	"github.com/signadot/textlex/textfile"
	"github.com/signadot/textlex/token"

	"github.com/scott-cotton/cli"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return statsArgs(cfg, cc.In, cc.Out, args)
}

func statsArgs(cfg *StatsConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: stats requires at least one file", cli.ErrUsage)
	}
	total := map[token.Category]int{}
	for _, arg := range args {
		path := textfile.Resolve(cfg.Dir, arg)
		text, err := readInput(in, path)
		if err != nil {
			return err
		}
		counts := token.Counts(lex(text))
		if cfg.Total {
			for c, n := range counts {
				total[c] += n
			}
			continue
		}
		if len(args) > 1 {
			fmt.Fprintf(w, "# %s\n", path)
		}
		if err := encode.EncodeCounts(counts, w, cfg.encOpts(w, nil)...); err != nil {
			return err
		}
	}
	if cfg.Total {
		return encode.EncodeCounts(total, w, cfg.encOpts(w, nil)...)
	}
	return nil
}
