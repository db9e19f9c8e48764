package debug

// call is one primitive invocation seen by recorder.
type call struct {
	Method string
	Value  any
}

// recorder is a Sink that remembers every call instead of writing.
type recorder struct {
	calls []call
}

func (r *recorder) Print(v any)   { r.calls = append(r.calls, call{Method: "Print", Value: v}) }
func (r *recorder) Println(v any) { r.calls = append(r.calls, call{Method: "Println", Value: v}) }
