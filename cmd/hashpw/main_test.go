package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gatekeeper/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devAliceHash = "AQIDBAUGBwgJCgsMDQ4PECndgaTB44TlKRYKEfe6HztyEfqm"

func stdinFile(t *testing.T, content string) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestRun_PrintsHash(t *testing.T) {
	var out, prompt bytes.Buffer

	err := run(stdinFile(t, "hunter2\n"), &out, &prompt, "")
	require.NoError(t, err)

	encoded := strings.TrimSpace(out.String())
	hashed, err := entity.ParseHashedPassword(encoded)
	require.NoError(t, err)
	assert.False(t, hashed.IsZero())
	assert.Empty(t, prompt.String())
}

func TestRun_Verify(t *testing.T) {
	var out, prompt bytes.Buffer

	require.NoError(t, run(stdinFile(t, "hunter2"), &out, &prompt, devAliceHash))
	assert.Equal(t, "ok\n", out.String())

	out.Reset()
	err := run(stdinFile(t, "hunter3\n"), &out, &prompt, devAliceHash)
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		stdin  string
		verify string
	}{
		{name: "empty stdin", stdin: ""},
		{name: "blank password", stdin: "   \n"},
		{name: "bad verify hash", stdin: "hunter2\n", verify: "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, prompt bytes.Buffer

			err := run(stdinFile(t, tt.stdin), &out, &prompt, tt.verify)
			assert.Error(t, err)
			assert.Empty(t, out.String())
		})
	}
}
