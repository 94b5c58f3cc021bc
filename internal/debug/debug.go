//go:build debug

// Package debug provides internal assertion and tracing helpers.
//
// Everything here compiles away to no-ops unless the build carries the
// "debug" tag, so the checks cost nothing in normal builds.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/timandy/routine"
)

// Enabled is true when the binary is built with the "debug" tag.
const Enabled = true

var tls = routine.NewThreadLocal[testing.TB]()

// WithTesting redirects Log output to t.Log for the duration of a test.
func WithTesting(t testing.TB) func() {
	t.Helper()

	prev := tls.Get()
	tls.Set(t)

	return func() { tls.Set(prev) }
}

// Assert panics if cond is false. It is only compiled in debug builds.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("art: internal assertion failed: "+format, args...))
	}
}

// Log writes a trace line identifying the calling file (by base name, under a
// fixed "art/" label), line, and goroutine. Only compiled in debug builds.
func Log(operation, format string, args ...any) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "???", 0
	}

	file = filepath.Base(file)

	buf := new(strings.Builder)
	_, _ = fmt.Fprintf(buf, "art/%s:%d [g%04d] %s: ", file, line, routine.Goid(), operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if t := tls.Get(); t != nil {
		t.Log(buf.String())
		return
	}

	_, _ = buf.WriteString("\n")
	_, _ = os.Stderr.WriteString(buf.String())
}
