package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/truthtab/truthtab"
	"github.com/truthtab/truthtab/encode"
	"github.com/truthtab/truthtab/format"
	"github.com/truthtab/truthtab/nf"
)

func ttMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err := sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	res, err := compileArgs(cfg, cc, args)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc)...)
}

func ttTable(cfg *TableConfig, cc *cli.Context, args []string) error {
	res, err := compileArgs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc), encode.EncodeForms(false))
	return encode.Encode(res, cc.Out, opts...)
}

func ttForm(cfg *FormConfig, cc *cli.Context, args []string, conjunctive bool) error {
	res, err := compileArgs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	form := res.DNF
	if conjunctive {
		form = res.CNF
	}
	if cfg.OutFormat != nil && *cfg.OutFormat == format.DimacsFormat {
		if !conjunctive {
			return fmt.Errorf("%w: dimacs output is only defined for cnf", cli.ErrUsage)
		}
		return nf.Dimacs(form, res.Vars, cc.Out)
	}
	_, err = fmt.Fprintln(cc.Out, form)
	return err
}

func ttAst(cfg *AstConfig, cc *cli.Context, args []string) error {
	res, err := compileArgs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, res.AST)
	return err
}

// compileArgs treats the remaining arguments as the formula, falling
// back to stdin when none are given.
func compileArgs(cfg *MainConfig, cc *cli.Context, args []string) (*truthtab.Result, error) {
	src := strings.Join(args, " ")
	if strings.TrimSpace(src) == "" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, err
		}
		src = string(d)
	}
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("%w: no formula given", cli.ErrUsage)
	}
	return truthtab.Compile(src, cfg.compileOpts()...)
}
