package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/npillmayer/digitring"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(trace2go.Teardown)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDigitFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSumCommandStreams(t *testing.T) {
	path := writeDigitFile(t, "91212129\n")
	out, err := runCLI(t, "sum", path)
	require.NoError(t, err)
	assert.Equal(t, "sum:     9\n", out)
}

func TestSumCommandWithRange(t *testing.T) {
	path := writeDigitFile(t, "99112299\n")
	out, err := runCLI(t, "sum", "--start", "2", "--end", "6", path)
	require.NoError(t, err)
	assert.Equal(t, "digits:  4\nsum:     3\n", out)
	out, err = runCLI(t, "sum", "--start", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "digits:  6\nsum:     12\n", out)
}

func TestSumCommandErrors(t *testing.T) {
	path := writeDigitFile(t, "123\n")
	_, err := runCLI(t, "sum", "--start", "2", "--end", "1", path)
	assert.True(t, errors.Is(err, digitring.ErrIndexOutOfBounds), "expected range error, got %v", err)
	path = writeDigitFile(t, "12a4\n")
	_, err = runCLI(t, "sum", path)
	var derr *digitring.InvalidDigitError
	require.True(t, errors.As(err, &derr), "expected *InvalidDigitError, got %v", err)
	assert.Equal(t, uint64(2), derr.Pos)
	_, err = runCLI(t, "sum")
	assert.Error(t, err)
}

func TestSumCommandTracing(t *testing.T) {
	path := writeDigitFile(t, "1111\n")
	out, err := runCLI(t, "--trace", "Debug", "sum", "--frag-size", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "sum:     4\n", out)
}

func TestBenchCommand(t *testing.T) {
	out, err := runCLI(t, "bench", "--size", "1000", "--seed", "7")
	require.NoError(t, err)
	want, err := digitring.SumMatching(randomDigits(1000, 7))
	require.NoError(t, err)
	assert.Contains(t, out, "digits:  1000\n")
	assert.Contains(t, out, "sum:     "+strconv.FormatUint(want, 10)+"\n")
	assert.Contains(t, out, "elapsed:")
	_, err = runCLI(t, "bench", "--size", "-1")
	assert.Error(t, err)
}

func TestRandomDigitsDeterministic(t *testing.T) {
	a := randomDigits(500, 42)
	b := randomDigits(500, 42)
	assert.Equal(t, a, b)
	for _, c := range a {
		assert.True(t, c >= '0' && c <= '9')
	}
}
