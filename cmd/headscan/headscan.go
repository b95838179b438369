package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/minescan/headscan/extract"
)

func headscanMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: specify one world folder", cli.ErrUsage)
	}
	worldDir := args[0]
	world, err := extract.OpenWorld(worldDir)
	if err != nil {
		return err
	}
	fileCfg, err := loadFileConfig(cfg.ConfigPath, worldDir)
	if err != nil {
		return err
	}
	if cfg.Workers == 0 {
		cfg.Workers = fileCfg.Workers
	}
	applyIgnore(world, fileCfg.Ignore)

	var (
		mu       sync.Mutex
		failures int
	)
	report := func(path string, err error) {
		mu.Lock()
		failures++
		mu.Unlock()
		if cfg.Quiet {
			return
		}
		theLog.Warn("unable to fully process", "path", path, "err", err)
	}

	set := extract.Extract(world, extract.Options{
		Workers: cfg.Workers,
		Report:  report,
	})
	for _, head := range set.Values() {
		fmt.Fprintln(cc.Out, head)
	}
	if !cfg.Quiet {
		cfg.summarize(set.Len(), len(world.Files()), failures)
	}
	return nil
}

func (cfg *MainConfig) summarize(nHeads, nFiles, nFailures int) {
	msg := fmt.Sprintf("%d heads from %d files", nHeads, nFiles)
	if nFailures > 0 {
		msg += fmt.Sprintf(", %d files only partially processed", nFailures)
	}
	if cfg.NoColor || !isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	c := color.New(color.FgGreen)
	if nFailures > 0 {
		c = color.New(color.FgYellow)
	}
	c.Fprintln(os.Stderr, msg)
}
