package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// World lists the input files of one world save, resolved to concrete
// paths. Region and Entities hold .mca region containers, PlayerData
// holds per-player .dat files, LevelDat the world-level .dat file (""
// when absent).
type World struct {
	Region     []string
	Entities   []string
	PlayerData []string
	LevelDat   string
}

// OpenWorld enumerates the standard world layout under dir. Missing
// subdirectories and a missing level.dat are fine; an unreadable dir
// itself is not.
func OpenWorld(dir string) (*World, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	w := &World{}
	if w.Region, err = listSuffix(filepath.Join(dir, "region"), ".mca"); err != nil {
		return nil, err
	}
	if w.Entities, err = listSuffix(filepath.Join(dir, "entities"), ".mca"); err != nil {
		return nil, err
	}
	if w.PlayerData, err = listSuffix(filepath.Join(dir, "playerdata"), ".dat"); err != nil {
		return nil, err
	}
	levelDat := filepath.Join(dir, "level.dat")
	if fi, err := os.Stat(levelDat); err == nil && fi.Mode().IsRegular() {
		w.LevelDat = levelDat
	}
	return w, nil
}

// listSuffix returns the regular files under dir whose names end in
// suffix. A missing dir yields no files and no error.
func listSuffix(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var res []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		res = append(res, filepath.Join(dir, entry.Name()))
	}
	return res, nil
}

// Files returns every input path of the world: region and entity
// containers first, then player data and level.dat.
func (w *World) Files() []string {
	res := make([]string, 0, len(w.Region)+len(w.Entities)+len(w.PlayerData)+1)
	res = append(res, w.Region...)
	res = append(res, w.Entities...)
	res = append(res, w.PlayerData...)
	if w.LevelDat != "" {
		res = append(res, w.LevelDat)
	}
	return res
}
