package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// runCLI executes the root command with args and stdin, returning stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// tableRows returns the whitespace-split data rows of the last status table in output.
func tableRows(t *testing.T, output string) [][]string {
	t.Helper()

	lines := strings.Split(output, "\n")
	header := -1
	for i, line := range lines {
		if strings.Contains(line, "Block Size (KB)") {
			header = i
		}
	}
	if header < 0 {
		t.Fatalf("no status table in output:\n%s", output)
	}

	var rows [][]string
	for _, line := range lines[header+2:] {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			break
		}
		rows = append(rows, fields)
	}
	return rows
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("output is not valid JSON: %v\nOutput: %s", err, output)
	}
}
