// Package debug gates verbose tracing behind MORPH_DEBUG_* environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Reconcile bool
	Registry  bool
	LSP       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Reconcile = boolEnv("MORPH_DEBUG_RECONCILE")
	d.Registry = boolEnv("MORPH_DEBUG_REGISTRY")
	d.LSP = boolEnv("MORPH_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Reconcile() bool {
	return d.Reconcile
}

func Registry() bool {
	return d.Registry
}

func LSP() bool {
	return d.LSP
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
