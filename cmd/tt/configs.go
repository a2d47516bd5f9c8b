package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/truthtab/truthtab"
	"github.com/truthtab/truthtab/encode"
	"github.com/truthtab/truthtab/format"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force color output'"`
	NoForms bool `cli:"name=no-forms desc='omit the dnf/cnf lines'"`

	OutFormat *format.Format

	MaxVars int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) maxVarsOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: max-vars wants a non-negative count, got %q", cli.ErrUsage, a)
	}
	cfg.MaxVars = n
	return n, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) compileOpts() []truthtab.Option {
	if cfg.MaxVars == 0 {
		return nil
	}
	return []truthtab.Option{truthtab.WithMaxVars(cfg.MaxVars)}
}

func (cfg *MainConfig) encOpts(cc *cli.Context) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.NoForms {
		res = append(res, encode.EncodeForms(false))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type TableConfig struct {
	*MainConfig

	Table *cli.Command
}

type FormConfig struct {
	*MainConfig

	Form *cli.Command
}

type AstConfig struct {
	*MainConfig

	Ast *cli.Command
}
