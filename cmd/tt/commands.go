package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, markdown/m, json/j, yaml/y, dimacs/d",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "max-vars",
			Description: "variable cap for truth-table enumeration (default 16)",
			Type:        cli.NamedFuncOpt(cfg.maxVarsOpt, "(count)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tt").
		WithSynopsis("tt [opts] [command] <formula>").
		WithDescription("tt compiles a propositional formula and prints its truth table with the dnf and cnf derived from it.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ttMain(cfg, cc, args)
		}).
		WithSubs(
			TableCommand(cfg),
			DnfCommand(cfg),
			CnfCommand(cfg),
			AstCommand(cfg))
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("table").
		WithAliases("t", "ta").
		WithSynopsis("table <formula>").
		WithDescription("print the truth table without the derived forms").
		WithRun(func(cc *cli.Context, args []string) error {
			return ttTable(cfg, cc, args)
		})
	cfg.Table = cmd
	return cmd
}

func DnfCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FormConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dnf").
		WithSynopsis("dnf <formula>").
		WithDescription("print the disjunctive normal form").
		WithRun(func(cc *cli.Context, args []string) error {
			return ttForm(cfg, cc, args, false)
		})
	cfg.Form = cmd
	return cmd
}

func CnfCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FormConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("cnf").
		WithSynopsis("cnf <formula>").
		WithDescription("print the conjunctive normal form").
		WithRun(func(cc *cli.Context, args []string) error {
			return ttForm(cfg, cc, args, true)
		})
	cfg.Form = cmd
	return cmd
}

func AstCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AstConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("ast").
		WithAliases("a").
		WithSynopsis("ast <formula>").
		WithDescription("print the parsed formula in canonical notation").
		WithRun(func(cc *cli.Context, args []string) error {
			return ttAst(cfg, cc, args)
		})
	cfg.Ast = cmd
	return cmd
}
