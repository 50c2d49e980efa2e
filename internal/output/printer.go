package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Printer writes operation envelopes, as indented JSON for machine callers
// or as short colorized text for a human at a terminal.
type Printer struct {
	Writer io.Writer
	JSON   bool
	Color  bool
}

// Envelope is the common slice of every operation result the printer needs
// for the human rendering.
type Envelope interface {
	Succeeded() bool
	Summary() string
	Detail() string
}

// Print writes one operation result. The res value must be JSON-serializable.
func (p *Printer) Print(res any) error {
	if p.JSON {
		enc := json.NewEncoder(p.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	env, ok := res.(Envelope)
	if !ok {
		enc := json.NewEncoder(p.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if env.Succeeded() {
		fmt.Fprintln(p.Writer, Success(env.Summary(), p.Color))
	} else {
		fmt.Fprintln(p.Writer, Failure(env.Summary(), p.Color))
	}
	if d := env.Detail(); d != "" {
		fmt.Fprintln(p.Writer, Dim(d, p.Color))
	}
	return nil
}
