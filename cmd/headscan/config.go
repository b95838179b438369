package main

import (
	"os"
	"path"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/minescan/headscan/extract"
)

const configName = ".headscan.yaml"

// FileConfig is the optional per-world config file. Flags override it.
type FileConfig struct {
	// Workers bounds the worker pool, like -j.
	Workers int `yaml:"workers"`
	// Ignore holds glob patterns matched against input file base
	// names; matching files are skipped.
	Ignore []string `yaml:"ignore"`
}

// loadFileConfig reads the config at explicit path, or looks for
// .headscan.yaml in the world dir and then the working directory. An
// explicit path must exist; the defaults may be absent.
func loadFileConfig(explicit, worldDir string) (*FileConfig, error) {
	cfg := &FileConfig{}
	p := explicit
	if p == "" {
		for _, cand := range []string{filepath.Join(worldDir, configName), configName} {
			if _, err := os.Stat(cand); err == nil {
				p = cand
				break
			}
		}
		if p == "" {
			return cfg, nil
		}
	}
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyIgnore drops world inputs whose base name matches any pattern.
func applyIgnore(w *extract.World, patterns []string) {
	if len(patterns) == 0 {
		return
	}
	match := func(p string) bool {
		for _, pat := range patterns {
			if ok, err := path.Match(pat, filepath.Base(p)); err == nil && ok {
				return true
			}
		}
		return false
	}
	keep := func(ps []string) []string {
		res := ps[:0]
		for _, p := range ps {
			if !match(p) {
				res = append(res, p)
			}
		}
		return res
	}
	w.Region = keep(w.Region)
	w.Entities = keep(w.Entities)
	w.PlayerData = keep(w.PlayerData)
	if w.LevelDat != "" && match(w.LevelDat) {
		w.LevelDat = ""
	}
}
