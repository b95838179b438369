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
			Name:        "j",
			Aliases:     []string{"workers"},
			Description: "worker pool size (default available parallelism - 1)",
			Type:        cli.NamedFuncOpt(cfg.workersOpt, "(count)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"config"},
			Description: "config file (default .headscan.yaml in the world dir)",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "headscan").
		WithSynopsis("headscan [opts] <world-dir>").
		WithDescription("headscan extracts custom head texture references from a world save.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return headscanMain(cfg, cc, args)
		})
}
