package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"gitwire.dev/gitwire/internal/output"
)

type testEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Extra   string `json:"extra,omitempty"`
}

func (e *testEnvelope) Succeeded() bool { return e.Success }
func (e *testEnvelope) Summary() string { return e.Message }
func (e *testEnvelope) Detail() string  { return e.Extra }

func TestPrinter(t *testing.T) {
	t.Run("emits indented JSON in machine mode", func(t *testing.T) {
		var buf bytes.Buffer
		p := &output.Printer{Writer: &buf, JSON: true}

		require.NoError(t, p.Print(&testEnvelope{Success: true, Message: "done"}))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Equal(t, true, decoded["success"])
		require.Equal(t, "done", decoded["message"])
	})

	t.Run("renders the summary and detail for humans", func(t *testing.T) {
		var buf bytes.Buffer
		p := &output.Printer{Writer: &buf}

		require.NoError(t, p.Print(&testEnvelope{Success: true, Message: "merged feature", Extra: "fast-forward"}))
		require.Contains(t, buf.String(), "merged feature")
		require.Contains(t, buf.String(), "fast-forward")
	})

	t.Run("falls back to JSON for values without the envelope shape", func(t *testing.T) {
		var buf bytes.Buffer
		p := &output.Printer{Writer: &buf}

		require.NoError(t, p.Print(map[string]int{"count": 3}))
		require.Contains(t, buf.String(), `"count": 3`)
	})
}
