package debug

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFailureRecord(t *testing.T) {
	for _, testcase := range []struct {
		name    string
		level   slog.Level
		records int
	}{
		{
			name:    "WarnRecorded",
			level:   slog.LevelWarn,
			records: 2,
		},
		{
			name:    "FilteredByErrorLevel",
			level:   slog.LevelError,
			records: 0,
		},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			RegisterLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{
				Level: testcase.level,
			}))
			t.Cleanup(func() { RegisterLogger(nil) })

			s := NewWriterSink(failingWriter{}, "")
			s.Print("x")
			s.Println(10)

			dec := json.NewDecoder(buf)
			count := 0
			for dec.More() {
				var record map[string]any
				require.NoError(t, dec.Decode(&record))
				require.Equal(t, "WARN", record["level"])
				require.Equal(t, "debug sink write failed", record["msg"])
				require.Equal(t, "line dropped", record["error"])
				count++
			}
			require.Equal(t, testcase.records, count)
		})
	}
}

func TestNilHandlerDiscards(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	RegisterLogger(slog.NewTextHandler(buf, nil))
	RegisterLogger(nil)

	NewWriterSink(failingWriter{}, "").Println("dropped")
	require.Zero(t, buf.Len())
}
