package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/textlex/encode"
	"github.com/signadot/textlex/format"
	"github.com/signadot/textlex/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='colorize output'"`
	Dir   string `cli:"name=d aliases=dir desc='directory prefix for input names'"`

	OutFormat *format.Format
	Out       string

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.DebugFormat
}

// encOpts returns the encoding options for output to w.  Colors are
// used when requested with -color, or when -color is not given and w
// is a terminal.
func (cfg *MainConfig) encOpts(w io.Writer, lines *token.Lines) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
	}
	if lines != nil {
		res = append(res, encode.EncodeLines(lines))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type TokenizeConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='keep only tokens matching an expression'"`
	Lines bool   `cli:"name=lines desc='include line and column'"`

	Tokenize *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Update bool `cli:"name=update desc='rewrite the golden file instead of comparing'"`

	Check *cli.Command
}

type StatsConfig struct {
	*MainConfig

	Total bool `cli:"name=total desc='sum counts over all files'"`

	Stats *cli.Command
}
