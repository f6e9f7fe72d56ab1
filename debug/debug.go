package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Parse bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("LAXYAML_DEBUG_SCAN")
	d.Parse = boolEnv("LAXYAML_DEBUG_PARSE")
	d.LSP = boolEnv("LAXYAML_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Parse() bool {
	return d.Parse
}
func LSP() bool {
	return d.LSP
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
