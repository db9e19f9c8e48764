//go:build debug
// +build debug

package debug

// Enabled reports whether the binary was built with the debug tag.
const Enabled = true

// Debug4 prints four space-separated values and a line terminator.
func Debug4(x, y, z, a any) {
	s := current()
	s.Print(x)
	s.Print(" ")
	s.Print(y)
	s.Print(" ")
	s.Print(z)
	s.Print(" ")
	s.Println(a)
}

// Debug3 prints three space-separated values and a line terminator.
func Debug3(x, y, z any) {
	s := current()
	s.Print(x)
	s.Print(" ")
	s.Print(y)
	s.Print(" ")
	s.Println(z)
}

// Debug2 prints two space-separated values and a line terminator.
func Debug2(y, z any) {
	s := current()
	s.Print(y)
	s.Print(" ")
	s.Println(z)
}

// Debug prints a single value and a line terminator.
func Debug(z any) {
	current().Println(z)
}

// DebugLn prints a blank line.
func DebugLn() {
	current().Println("")
}
