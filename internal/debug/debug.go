//go:build !debug
// +build !debug

package debug

// empty print forms used when debugging is not enabled

// Enabled reports whether the binary was built with the debug tag.
const Enabled = false

// Debug4 prints four space-separated values and a line terminator.
func Debug4(_, _, _, _ any) {}

// Debug3 prints three space-separated values and a line terminator.
func Debug3(_, _, _ any) {}

// Debug2 prints two space-separated values and a line terminator.
func Debug2(_, _ any) {}

// Debug prints a single value and a line terminator.
func Debug(_ any) {}

// DebugLn prints a blank line.
func DebugLn() {}
