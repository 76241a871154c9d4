package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Output(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 101)
	for i := 0; i < 100; i++ {
		assert.Equal(t, fmt.Sprintf("Processed batch %d", i), lines[i])
	}
	assert.Regexp(t, `^Data allocated at: 0x[0-9a-f]+$`, lines[100])
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"5"})

	assert.Error(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestRootCmd_IgnoresConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "batch_override", body: "leak:\n  batches: 3\n"},
		{name: "heap_backend", body: "leak:\n  allocator: heap\n  batches: 3\n"},
		{name: "unknown_backend", body: "leak:\n  allocator: mmap\n"},
		{name: "malformed", body: "leak: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testChdir(t, t.TempDir())
			require.NoError(t, os.WriteFile("config.yaml", []byte(tt.body), 0o600))

			var out, errOut bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&errOut)
			cmd.SetArgs([]string{})

			require.NoError(t, cmd.Execute())
			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			require.Len(t, lines, 101)
			assert.Equal(t, "Processed batch 99", lines[99])
			assert.Regexp(t, `^Data allocated at: 0x[0-9a-f]+$`, lines[100])
		})
	}
}
