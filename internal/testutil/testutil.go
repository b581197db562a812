// Package testutil provides shared helpers for exercising the update engine
// without a real git checkout.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// FakeRunner is a scripted git.Runner. Each call is matched against Responses
// by the space-joined argument list; unscripted calls fail.
type FakeRunner struct {
	Responses map[string]FakeResponse
	Calls     []string
}

// FakeResponse is the scripted outcome for one git invocation.
type FakeResponse struct {
	Out string
	Err error
}

// Run records the call and returns the scripted response. A key ending in
// "*" matches any invocation with that prefix, which covers timestamped
// arguments such as stash labels.
func (r *FakeRunner) Run(args ...string) (string, error) {
	key := strings.Join(args, " ")
	r.Calls = append(r.Calls, key)
	if resp, ok := r.Responses[key]; ok {
		return resp.Out, resp.Err
	}
	for pattern, resp := range r.Responses {
		if strings.HasSuffix(pattern, "*") && strings.HasPrefix(key, strings.TrimSuffix(pattern, "*")) {
			return resp.Out, resp.Err
		}
	}
	return "", fmt.Errorf("unscripted git invocation: git %s", key)
}

// CalledPrefix reports whether any invocation started with the given prefix.
func (r *FakeRunner) CalledPrefix(prefix string) bool {
	for _, call := range r.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// Called reports whether an invocation with the given space-joined args was made.
func (r *FakeRunner) Called(key string) bool {
	for _, call := range r.Calls {
		if call == key {
			return true
		}
	}
	return false
}

// Script returns a FakeRunner with the standard responses for a clean
// repository that is behind the remote by the given commits and paths.
// Callers override or extend Responses for specific scenarios.
func Script(behind int, changed []string, deleted []string) *FakeRunner {
	r := &FakeRunner{Responses: map[string]FakeResponse{}}
	r.Responses["rev-parse HEAD"] = FakeResponse{Out: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}
	r.Responses["ls-remote origin HEAD"] = FakeResponse{Out: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\tHEAD"}
	r.Responses["status --porcelain"] = FakeResponse{}
	r.Responses["fetch origin"] = FakeResponse{}
	r.Responses["rev-list --count HEAD..origin/main"] = FakeResponse{Out: fmt.Sprintf("%d", behind)}
	r.Responses["diff --name-only HEAD origin/main"] = FakeResponse{Out: strings.Join(changed, "\n")}
	r.Responses["diff --name-only --diff-filter=D HEAD origin/main"] = FakeResponse{Out: strings.Join(deleted, "\n")}
	r.Responses["describe --tags --abbrev=0"] = FakeResponse{Out: "v1.2.0"}
	r.Responses["describe --tags --abbrev=0 origin/main"] = FakeResponse{Out: "v1.3.0"}
	r.Responses["pull --rebase origin main"] = FakeResponse{}
	r.Responses["clean -fd agents"] = FakeResponse{}
	r.Responses["clean -fd commands"] = FakeResponse{}
	r.Responses["clean -fd scripts"] = FakeResponse{}
	r.Responses["clean -fd skills"] = FakeResponse{}
	return r
}
