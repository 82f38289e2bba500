// Package testing provides helpers for exercising the built deckctl binary
// in dispatch-contract tests.
package testing

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"
)

// CLITestRunner provides utilities for testing CLI commands.
type CLITestRunner struct {
	t          *testing.T
	binaryPath string
	workingDir string
	env        []string
	timeout    time.Duration
}

// NewCLITestRunner creates a new CLI test runner.
func NewCLITestRunner(t *testing.T, binaryPath string) *CLITestRunner {
	return &CLITestRunner{
		t:          t,
		binaryPath: binaryPath,
		timeout:    30 * time.Second,
	}
}

// WithWorkingDir sets the working directory for CLI commands.
func (r *CLITestRunner) WithWorkingDir(dir string) *CLITestRunner {
	r.workingDir = dir
	return r
}

// WithEnv sets environment variables for CLI commands.
func (r *CLITestRunner) WithEnv(env []string) *CLITestRunner {
	r.env = env
	return r
}

// WithTimeout sets the timeout for CLI commands.
func (r *CLITestRunner) WithTimeout(timeout time.Duration) *CLITestRunner {
	r.timeout = timeout
	return r
}

// CLIResult represents the result of a CLI command execution.
type CLIResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Error    error
}

// Run executes a CLI command and returns the result.
func (r *CLITestRunner) Run(args ...string) *CLIResult {
	r.t.Helper()

	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	// r.binaryPath and args are test-controlled inputs.
	cmd := exec.CommandContext(ctx, r.binaryPath, args...) //nolint:gosec // test runner intentionally executes built binary
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if r.env != nil {
		cmd.Env = r.env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &CLIResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
		Error:    err,
	}

	var ee *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &ee):
		result.ExitCode = ee.ExitCode()
	default:
		result.ExitCode = -1
	}

	return result
}

// AssertExitCode fails the test when the exit code differs.
func (r *CLITestRunner) AssertExitCode(result *CLIResult, expected int) {
	r.t.Helper()
	if result.ExitCode != expected {
		r.t.Fatalf("expected exit code %d, got %d (stdout=%q stderr=%q)",
			expected, result.ExitCode, result.Stdout, result.Stderr)
	}
}
