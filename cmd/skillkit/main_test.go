package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func swapVersion(t *testing.T, version string, commit string, buildDate string) {
	t.Helper()
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	Version, Commit, BuildDate = version, commit, buildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})
}

func TestVersionStringPlain(t *testing.T) {
	swapVersion(t, "dev", "unknown", "unknown")
	assert.Equal(t, "dev", versionString())
}

func TestVersionStringWithMetadata(t *testing.T) {
	swapVersion(t, "1.4.0", "abc1234", "2025-06-01")
	assert.Equal(t, "1.4.0 (commit abc1234, built 2025-06-01)", versionString())
}

func TestVersionStringCommitOnly(t *testing.T) {
	swapVersion(t, "1.4.0", "abc1234", "unknown")
	assert.Equal(t, "1.4.0 (commit abc1234)", versionString())
}

func TestRunMainSuccess(t *testing.T) {
	orig := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error { return nil }
	t.Cleanup(func() { executeFunc = orig })

	exited := false
	runMain([]string{"skillkit"}, io.Discard, io.Discard, func(int) { exited = true })
	assert.False(t, exited)
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return &SilentExitError{Code: 1}
	}
	t.Cleanup(func() { executeFunc = orig })

	var stderr bytes.Buffer
	code := -1
	runMain([]string{"skillkit"}, io.Discard, &stderr, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.Empty(t, stderr.String())
}

func TestRunMainError(t *testing.T) {
	orig := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return errors.New("resolve repository directory: boom")
	}
	t.Cleanup(func() { executeFunc = orig })

	var stderr bytes.Buffer
	code := -1
	runMain([]string{"skillkit"}, io.Discard, &stderr, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "resolve repository directory: boom")
}
