package extract

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"

	"github.com/minescan/headscan/nbt"
)

func headFor(url string) string {
	return base64.StdEncoding.EncodeToString(
		[]byte(`{"textures":{"SKIN":{"url":"` + url + `"}}}`))
}

// tagBytes encodes a compound with the given strings as leaf values.
func tagBytes(t *testing.T, strs ...string) []byte {
	t.Helper()
	root := nbt.FromCompound()
	for i, s := range strs {
		root.Put(string(rune('a'+i)), nbt.FromString(s))
	}
	var buf bytes.Buffer
	if err := nbt.Encode(root, &buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func gzipBytes(t *testing.T, d []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(d); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// writeRegion writes a single-chunk gzip region file.
func writeRegion(t *testing.T, path string, chunk []byte) {
	t.Helper()
	payload := gzipBytes(t, chunk)
	buf := make([]byte, 2*4096, 3*4096)
	binary.BigEndian.PutUint32(buf, 2<<8|1)
	record := make([]byte, 5+len(payload))
	binary.BigEndian.PutUint32(record, uint32(len(payload)+1))
	record[4] = 1 // gzip
	copy(record[5:], payload)
	buf = append(buf, record...)
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, path string, d []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, d, 0644); err != nil {
		t.Fatal(err)
	}
}

// testWorld lays out a small world with three distinct heads, one of
// them duplicated across files, plus strings that must be rejected.
func testWorld(t *testing.T) (dir string, want []string) {
	t.Helper()
	dir = t.TempDir()
	h1, h2, h3 := headFor("http://example/1"), headFor("http://example/2"), headFor("http://example/3")

	if err := os.MkdirAll(filepath.Join(dir, "region"), 0755); err != nil {
		t.Fatal(err)
	}
	writeRegion(t, filepath.Join(dir, "region", "r.0.0.mca"),
		tagBytes(t, h1, "not a head", h2))
	if err := os.MkdirAll(filepath.Join(dir, "entities"), 0755); err != nil {
		t.Fatal(err)
	}
	writeRegion(t, filepath.Join(dir, "entities", "r.0.0.mca"),
		tagBytes(t, h1)) // duplicate of h1
	writeFile(t, filepath.Join(dir, "playerdata", "p.dat"),
		gzipBytes(t, tagBytes(t, h3, headFor("")[:10])))
	writeFile(t, filepath.Join(dir, "level.dat"),
		gzipBytes(t, tagBytes(t, "minecraft:stone")))

	want = []string{h1, h2, h3}
	slices.Sort(want)
	return dir, want
}

func extractSorted(t *testing.T, dir string, opts Options) []string {
	t.Helper()
	world, err := OpenWorld(dir)
	if err != nil {
		t.Fatal(err)
	}
	got := Extract(world, opts).Values()
	slices.Sort(got)
	return got
}

func TestExtract(t *testing.T) {
	dir, want := testWorld(t)
	got := extractSorted(t, dir, Options{Report: func(path string, err error) {
		t.Errorf("unexpected failure for %s: %v", path, err)
	}})
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("heads (-want +got):\n%s", d)
	}
}

func TestExtractIdempotent(t *testing.T) {
	dir, _ := testWorld(t)
	first := extractSorted(t, dir, Options{})
	second := extractSorted(t, dir, Options{})
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("second run differs (-first +second):\n%s", d)
	}
}

func TestExtractSingleWorker(t *testing.T) {
	dir, want := testWorld(t)
	got := extractSorted(t, dir, Options{Workers: 1})
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("heads (-want +got):\n%s", d)
	}
}

func TestExtractFailureIsolation(t *testing.T) {
	dir, want := testWorld(t)
	// A region file whose occupied slot points past the buffer, and a
	// player data file that is neither gzip nor a tag stream.
	corrupt := make([]byte, 2*4096)
	binary.BigEndian.PutUint32(corrupt, 0xFFFF<<8|1)
	writeFile(t, filepath.Join(dir, "region", "r.9.9.mca"), corrupt)
	writeFile(t, filepath.Join(dir, "playerdata", "junk.dat"), []byte("junk"))

	var (
		mu     sync.Mutex
		failed []string
	)
	got := extractSorted(t, dir, Options{Report: func(path string, err error) {
		if err == nil {
			t.Errorf("report with nil error for %s", path)
		}
		mu.Lock()
		failed = append(failed, filepath.Base(path))
		mu.Unlock()
	}})
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("sibling files affected (-want +got):\n%s", d)
	}
	slices.Sort(failed)
	if d := cmp.Diff([]string{"junk.dat", "r.9.9.mca"}, failed); d != "" {
		t.Errorf("failures (-want +got):\n%s", d)
	}
}

// A region file that frames its first chunks correctly and then goes
// bad keeps the heads harvested before the corruption.
func TestExtractPartialRegion(t *testing.T) {
	dir := t.TempDir()
	h := headFor("http://example/partial")
	regionPath := filepath.Join(dir, "region", "r.0.0.mca")
	if err := os.MkdirAll(filepath.Dir(regionPath), 0755); err != nil {
		t.Fatal(err)
	}
	writeRegion(t, regionPath, tagBytes(t, h))
	// Occupy a later slot with an out-of-bounds offset.
	buf, err := os.ReadFile(regionPath)
	if err != nil {
		t.Fatal(err)
	}
	binary.BigEndian.PutUint32(buf[4*10:], 0xFFFF<<8|1)
	if err := os.WriteFile(regionPath, buf, 0644); err != nil {
		t.Fatal(err)
	}

	reported := false
	got := extractSorted(t, dir, Options{Report: func(path string, err error) {
		reported = true
	}})
	if !reported {
		t.Error("corruption was not reported")
	}
	if d := cmp.Diff([]string{h}, got); d != "" {
		t.Errorf("heads before the corrupt slot (-want +got):\n%s", d)
	}
}

func TestDataReader(t *testing.T) {
	raw := []byte("plain tag bytes")
	r, err := dataReader(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := io.ReadAll(r); !bytes.Equal(got, raw) {
		t.Errorf("raw passthrough: got %q", got)
	}
	r, err = dataReader(gzipBytes(t, raw))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := io.ReadAll(r); !bytes.Equal(got, raw) {
		t.Errorf("gzip sniff: got %q", got)
	}
}
