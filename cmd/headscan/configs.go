package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Quiet   bool `cli:"name=q aliases=quiet desc='suppress diagnostics on stderr'"`
	NoColor bool `cli:"name=no-color desc='do not color diagnostics'"`

	Workers    int
	ConfigPath string

	Out      string
	CloseOut func() error

	Main *cli.Command
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

func (cfg *MainConfig) workersOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: -j wants a positive count, got %q", cli.ErrUsage, a)
	}
	cfg.Workers = n
	return n, nil
}

func (cfg *MainConfig) configOpt(cc *cli.Context, a string) (any, error) {
	cfg.ConfigPath = a
	return a, nil
}
