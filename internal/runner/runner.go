// Package runner executes delegated external commands with inherited
// standard streams and verbatim exit-code propagation.
package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	deckerrors "git.home.luguber.info/inful/deckctl/internal/errors"
	"git.home.luguber.info/inful/deckctl/internal/logfields"
)

// ExitError reports a delegate that ran and exited non-zero. The code is the
// child's exit status, surfaced unchanged by the CLI.
type ExitError struct {
	Cmd  string
	Code int
}

// Error implements the error interface
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Cmd, e.Code)
}

// ExitCode returns the delegate's exit status.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Runner executes external commands in a fixed working directory.
type Runner struct {
	dir string
}

// New creates a runner rooted at the given project directory.
// Empty dir means the current working directory.
func New(dir string) *Runner {
	return &Runner{dir: dir}
}

// Available reports whether a binary can be resolved on PATH.
func Available(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// Run executes the named command, forwarding stdin/stdout/stderr to the
// delegate. Interrupting the context sends SIGINT to the child so the
// presentation tool can shut down its server cleanly.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	runID := uuid.NewString()[:8]

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = 5 * time.Second

	display := strings.TrimSpace(name + " " + strings.Join(args, " "))
	slog.Debug("Delegating to external command",
		logfields.RunID(runID),
		logfields.Command(display),
		logfields.Dir(r.dir))

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		slog.Debug("Delegate completed",
			logfields.RunID(runID),
			logfields.Command(display),
			logfields.DurationMS(float64(elapsed.Milliseconds())))
		return nil
	}

	var ee *exec.ExitError
	if stderrors.As(err, &ee) {
		code := ee.ExitCode()
		if code < 0 {
			// Killed before reporting a status (context cancel with an
			// uncooperative child); conventional interrupt code.
			code = 130
		}
		slog.Debug("Delegate failed",
			logfields.RunID(runID),
			logfields.Command(display),
			logfields.ExitCode(code))
		return &ExitError{Cmd: name, Code: code}
	}

	// The command never started (missing binary, permission problem).
	return deckerrors.Wrap(err, deckerrors.CategoryToolchain, deckerrors.SeverityError,
		fmt.Sprintf("failed to start %s", name))
}
