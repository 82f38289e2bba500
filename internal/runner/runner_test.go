package runner

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckerrors "git.home.luguber.info/inful/deckctl/internal/errors"
)

func TestRunSuccess(t *testing.T) {
	r := New(t.TempDir())
	require.NoError(t, r.Run(context.Background(), "true"))
}

func TestRunPropagatesExitCode(t *testing.T) {
	r := New(t.TempDir())

	err := r.Run(context.Background(), "sh", "-c", "exit 7")
	require.Error(t, err)

	var ee *ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 7, ee.ExitCode())
	assert.Equal(t, "sh", ee.Cmd)
	assert.Contains(t, ee.Error(), "exited with code 7")
}

func TestRunMissingBinaryIsToolchainError(t *testing.T) {
	r := New(t.TempDir())

	err := r.Run(context.Background(), "definitely-not-a-real-binary-4711")
	require.Error(t, err)

	var ee *ExitError
	assert.False(t, errors.As(err, &ee), "missing binary must not look like a delegate exit")
	assert.True(t, deckerrors.IsCategory(err, deckerrors.CategoryToolchain))
}

func TestRunRespectsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	r := New(dir)

	require.NoError(t, r.Run(context.Background(), "sh", "-c", "touch marker"))
	assert.FileExists(t, filepath.Join(dir, "marker"))
}

func TestAvailable(t *testing.T) {
	assert.True(t, Available("sh"))
	assert.False(t, Available("definitely-not-a-real-binary-4711"))
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(t.TempDir())
	err := r.Run(ctx, "sh", "-c", "sleep 10")
	require.Error(t, err)
}
