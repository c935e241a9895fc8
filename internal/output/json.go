// Package output renders scan results for the terminal: JSON for machine
// consumption, a colored summary for humans, and a live progress printer.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON pretty-prints v to w
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
