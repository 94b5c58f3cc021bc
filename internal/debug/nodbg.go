//go:build !debug

package debug

import "testing"

// Enabled is false in ordinary builds; Assert and Log are no-ops.
const Enabled = false

func Assert(bool, string, ...any) {}

func Log(string, string, ...any) {}

// WithTesting is a no-op outside debug builds.
func WithTesting(testing.TB) func() { return func() {} }
