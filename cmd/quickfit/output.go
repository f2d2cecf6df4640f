package main

import (
	"encoding/json"
	"io"
)

// printJSON outputs data as JSON
func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
