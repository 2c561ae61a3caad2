package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimulateFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hamming.yaml")
	require.NoError(t, os.WriteFile(path, []byte("payload: 0b1111\n"), 0o644))
	t.Cleanup(func() { cfgFile = "" })

	out, err := execute(t, "simulate", "--config", path, "--strategy", "fixed", "--position", "1")
	require.NoError(t, err)
	assert.Equal(t, "input:   1111111\noutput:  0111111\nerroneous bit: 1\n", out)
}

func TestParsePayload(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"0b1010", 10, false},
		{"10", 10, false},
		{"0", 0, false},
		{"0b", 0, true},
		{"0b102", 0, true},
		{"0b" + strings.Repeat("1", 65), 0, true},
		{"-1", 0, true},
		{"ten", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePayload(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeCommand(t *testing.T) {
	for _, arg := range []string{"0b1010", "10"} {
		out, err := execute(t, "encode", arg)
		require.NoError(t, err)
		assert.Contains(t, out, "payload:  1010 (10)\n")
		assert.Contains(t, out, "codeword: 1011010 (90)\n")
		assert.Contains(t, out, "layout:   PPDPDDD\n")
	}

	_, err := execute(t, "encode", "ten")
	require.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	out, err := execute(t, "decode", "1001010")
	require.NoError(t, err)
	assert.Equal(t, "syndrome:  3\ncorrected: 1011010\npayload:   1010 (10)\n", out)

	out, err = execute(t, "decode", "1011010")
	require.NoError(t, err)
	assert.Contains(t, out, "syndrome:  0 (no error)\n")

	_, err = execute(t, "decode", "1011")
	require.ErrorIs(t, err, encoding.ErrBadLength)
}

func TestSimulateCommand(t *testing.T) {
	out, err := execute(t, "simulate", "0b1010", "--strategy", "fixed", "--position", "3")
	require.NoError(t, err)
	assert.Equal(t, "input:   1011010\noutput:  1001010\nerroneous bit: 3\n", out)

	_, err = execute(t, "simulate", "0b1010", "--strategy", "fixed", "--position", "9")
	require.ErrorIs(t, err, encoding.ErrPositionOutOfRange)

	_, err = execute(t, "simulate", "0b1010", "--strategy", "double")
	require.Error(t, err)

	out, err = execute(t, "simulate", "200", "--strategy", "random", "--seed", "7")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, encoding.Encode(200).String(), strings.Fields(lines[0])[1])
	assert.NotEqual(t, strings.Fields(lines[0])[1], strings.Fields(lines[1])[1])
	assert.NotContains(t, lines[2], "none")
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "--max", "255")
	require.NoError(t, err)
	assert.Equal(t, "checked 256 payloads, 2800 corrupted codewords, 0 failures\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: dev\n")
}
