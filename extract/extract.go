// Package extract coordinates head extraction across the files of a
// world save.
package extract

import (
	"bytes"
	"errors"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/minescan/headscan/debug"
	"github.com/minescan/headscan/heads"
	"github.com/minescan/headscan/nbt"
	"github.com/minescan/headscan/region"
)

// Options configures Extract.
type Options struct {
	// Workers bounds the worker pool. Zero or negative means the
	// available parallelism minus one, with a floor of one.
	Workers int

	// Report receives per-file failures: the file whose processing
	// stopped early and the cause. Heads harvested from that file
	// before the failure are kept. Nil means failures are dropped.
	Report func(path string, err error)
}

// Extract fans one task per input file over a bounded worker pool and
// returns the deduplicated set of validated heads. A file's failure
// never cancels or blocks the other files; Extract always waits for
// every task to reach a terminal state before returning.
func Extract(world *World, opts Options) *Set {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0) - 1
	}
	if workers < 1 {
		workers = 1
	}
	report := opts.Report
	if report == nil {
		report = func(string, error) {}
	}

	type task struct {
		path     string
		isRegion bool
	}
	set := NewSet()
	tasks := make(chan task)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				if debug.Extract() {
					debug.Logf("extract: processing %s", t.path)
				}
				var err error
				if t.isRegion {
					err = processRegion(t.path, set)
				} else {
					err = processData(t.path, set)
				}
				if err != nil {
					report(t.path, err)
				}
			}
		}()
	}
	for _, p := range world.Region {
		tasks <- task{path: p, isRegion: true}
	}
	for _, p := range world.Entities {
		tasks <- task{path: p, isRegion: true}
	}
	for _, p := range world.PlayerData {
		tasks <- task{path: p}
	}
	if world.LevelDat != "" {
		tasks <- task{path: world.LevelDat}
	}
	close(tasks)
	wg.Wait()
	return set
}

// harvest walks one decoded tree and inserts its valid heads.
func harvest(root *nbt.Tag, set *Set) {
	for s := range heads.Harvest(root) {
		if heads.Validate(s) {
			set.Add(s)
		}
	}
}

// processRegion decodes every present chunk of one region file in slot
// order. The first framing or tag error stops this file; chunks already
// harvested stay in the set.
func processRegion(path string, set *Set) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec, err := region.NewDecoder(buf)
	if err != nil {
		return err
	}
	for {
		chunk, err := dec.ReadChunk()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		root, err := nbt.Decode(bytes.NewReader(chunk.Data))
		if err != nil {
			return err
		}
		harvest(root, set)
	}
}

// processData decodes one whole-file tag stream (player data or
// level.dat), gzip-framed or raw.
func processData(path string, set *Set) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	r, err := dataReader(buf)
	if err != nil {
		return err
	}
	root, err := nbt.Decode(r)
	if err != nil {
		return err
	}
	harvest(root, set)
	return nil
}
