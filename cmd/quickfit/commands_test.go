package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/quickfit/alloc"
	"github.com/joshuapare/quickfit/internal/command"
)

func TestStatusCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantRows [][]string
		wantErr  error
	}{
		{
			name: "default",
			args: []string{"status"},
			wantRows: [][]string{
				{"50", "5", "Free"}, {"100", "5", "Free"}, {"200", "5", "Free"},
				{"300", "5", "Free"}, {"500", "5", "Free"},
			},
		},
		{
			name:     "custom categories",
			args:     []string{"--categories", "64,128", "--initial", "0", "status"},
			wantRows: [][]string{{"64", "0", "Allocated"}, {"128", "0", "Allocated"}},
		},
		{
			name:    "duplicate categories",
			args:    []string{"--categories", "64,64", "status"},
			wantErr: alloc.ErrConfiguration,
		},
		{
			name:    "descending categories",
			args:    []string{"--categories", "128,64", "status"},
			wantErr: alloc.ErrConfiguration,
		},
		{
			name:    "non-numeric categories",
			args:    []string{"--categories", "64,big", "status"},
			wantErr: command.ErrBadSize,
		},
		{
			name:    "unknown preset",
			args:    []string{"--preset", "huge", "status"},
			wantErr: alloc.ErrConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "", tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, tableRows(t, out))
		})
	}
}

func TestStatusCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "", "--json", "--preset", "pow2", "status")
	require.NoError(t, err)
	assertJSON(t, out)
	assert.Contains(t, out, `"size": 4096`)
}

func TestAllocateCommand(t *testing.T) {
	out, err := runCLI(t, "", "allocate", "120", "600")
	require.NoError(t, err)

	assert.Contains(t, out, "Process of size 120 KB allocated in block size 200 KB.")
	assert.Contains(t, out, "No suitable block found for process size 600 KB.")
	assert.Equal(t, []string{"200", "4", "Free"}, tableRows(t, out)[2])
}

func TestAllocateCommand_FallThrough(t *testing.T) {
	out, err := runCLI(t, "", "allocate", "50", "50", "50", "50", "50", "50")
	require.NoError(t, err)

	rows := tableRows(t, out)
	assert.Equal(t, []string{"50", "0", "Allocated"}, rows[0])
	assert.Equal(t, []string{"100", "4", "Free"}, rows[1])
}

func TestAllocateCommand_BadInput(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-3"} {
		_, err := runCLI(t, "", "allocate", "--", arg)
		require.ErrorIs(t, err, command.ErrBadSize, arg)
	}

	_, err := runCLI(t, "", "allocate")
	require.Error(t, err)
}

func TestDeallocateCommand(t *testing.T) {
	out, err := runCLI(t, "", "deallocate", "200", "75")
	require.NoError(t, err)

	assert.Contains(t, out, "Block of size 200 KB deallocated.")
	assert.Contains(t, out, "Invalid block size.")
	assert.Equal(t, []string{"200", "6", "Free"}, tableRows(t, out)[2])
}

func TestQuietSuppressesMessages(t *testing.T) {
	out, err := runCLI(t, "", "--quiet", "allocate", "120")
	require.NoError(t, err)
	assert.NotContains(t, out, "Process of size")
	assert.Equal(t, []string{"200", "4", "Free"}, tableRows(t, out)[2])
}

func TestRunCommand(t *testing.T) {
	script := strings.Join([]string{
		"# scenario from the classic layout",
		"allocate 120",
		"allocate 600",
		"deallocate 75",
		"allocate 50",
		"reset",
		"allocate 300",
		"",
	}, "\n")
	path := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))

	out, err := runCLI(t, "", "run", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Memory has been reset.")
	assert.Equal(t, [][]string{
		{"50", "5", "Free"}, {"100", "5", "Free"}, {"200", "5", "Free"},
		{"300", "4", "Free"}, {"500", "5", "Free"},
	}, tableRows(t, out))
}

func TestRunCommand_Stdin(t *testing.T) {
	out, err := runCLI(t, "allocate 500\nquit\nallocate 500\n", "run", "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"500", "4", "Free"}, tableRows(t, out)[4])
}

func TestRunCommand_MalformedLine(t *testing.T) {
	_, err := runCLI(t, "allocate 50\nallocate fifty\n", "run", "-")
	require.ErrorIs(t, err, command.ErrBadSize)
	assert.Contains(t, err.Error(), "line 2")

	out, err := runCLI(t, "allocate 50\nallocate fifty\nallocate 50\n", "run", "--keep-going", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Error:")
	assert.Equal(t, []string{"50", "3", "Free"}, tableRows(t, out)[0])
}

func TestRunCommand_MissingFile(t *testing.T) {
	_, err := runCLI(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open script")
}

func TestShellCommand(t *testing.T) {
	input := strings.Join([]string{
		"allocate 120",
		"allocate nope",
		"frobnicate",
		"deallocate 75",
		"stats",
		"quit",
		"allocate 50",
	}, "\n")

	out, err := runCLI(t, input, "shell", "--table=false")
	require.NoError(t, err)

	assert.Contains(t, out, "Process of size 120 KB allocated in block size 200 KB.")
	assert.Contains(t, out, "size must be a positive integer")
	assert.Contains(t, out, "unknown command")
	assert.Contains(t, out, "Invalid block size.")
	assert.Contains(t, out, "allocations: 1")
	assert.NotContains(t, out, "Block Size (KB)")
	assert.NotContains(t, out, prompt, "no prompt when input is not a terminal")
}

func TestShellCommand_TableAfterChange(t *testing.T) {
	out, err := runCLI(t, "allocate 250\nhelp\n", "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "Commands:")
	assert.Equal(t, []string{"300", "4", "Free"}, tableRows(t, out)[3])
}

func TestPresetsCommand(t *testing.T) {
	out, err := runCLI(t, "", "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "classic  50,100,200,300,500 x5")
	assert.Contains(t, out, "pow2")
	assert.Contains(t, out, "fine")

	out, err = runCLI(t, "", "--json", "presets")
	require.NoError(t, err)
	assertJSON(t, out)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quickfit dev")
}

func TestVerboseLogsToStderr(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--verbose", "allocate", "120"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "msg=allocate")
	assert.Contains(t, errOut.String(), "category=200")
}
