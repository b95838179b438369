// Package debug holds env-var gated debug switches.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Region  bool
	Extract bool
}

var d *debug

func init() {
	d = &debug{}
	d.Region = boolEnv("HEADSCAN_DEBUG_REGION")
	d.Extract = boolEnv("HEADSCAN_DEBUG_EXTRACT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Region() bool {
	return d.Region
}
func Extract() bool {
	return d.Extract
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
