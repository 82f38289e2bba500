package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckErrorFormatting(t *testing.T) {
	plain := New(CategoryConfig, SeverityError, "bad config")
	assert.Equal(t, "config (error): bad config", plain.Error())

	wrapped := Wrap(fmt.Errorf("yaml: line 3"), CategoryConfig, SeverityError, "bad config")
	assert.Equal(t, "config (error): bad config: yaml: line 3", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "yaml: line 3")
}

func TestCategoryHelpers(t *testing.T) {
	err := ConfigError("missing entry")
	assert.True(t, IsCategory(err, CategoryConfig))
	assert.False(t, IsCategory(err, CategoryToolchain))
	assert.Equal(t, CategoryConfig, GetCategory(err))

	assert.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))
}

func TestWithContext(t *testing.T) {
	err := ValidationError("script not found").WithContext("script", "export")
	require.NotNil(t, err.Context)
	assert.Equal(t, "export", err.Context["script"])
}

// fakeExitErr mimics the runner's delegate error without importing it.
type fakeExitErr struct{ code int }

func (f *fakeExitErr) Error() string { return fmt.Sprintf("exit %d", f.code) }
func (f *fakeExitErr) ExitCode() int { return f.code }

func TestExitCodeMapping(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	assert.Equal(t, 0, a.ExitCodeFor(nil))
	assert.Equal(t, 2, a.ExitCodeFor(ValidationError("nope")))
	assert.Equal(t, 7, a.ExitCodeFor(ConfigError("nope")))
	assert.Equal(t, 8, a.ExitCodeFor(New(CategoryToolchain, SeverityError, "npm missing")))
	assert.Equal(t, 11, a.ExitCodeFor(New(CategoryFileSystem, SeverityError, "remove failed")))
	assert.Equal(t, 1, a.ExitCodeFor(fmt.Errorf("plain")))
}

func TestDelegateExitCodePassesThrough(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	// Delegate exit codes must not be translated.
	assert.Equal(t, 3, a.ExitCodeFor(&fakeExitErr{code: 3}))
	assert.Equal(t, 127, a.ExitCodeFor(&fakeExitErr{code: 127}))

	// Even when wrapped.
	assert.Equal(t, 9, a.ExitCodeFor(fmt.Errorf("dev: %w", &fakeExitErr{code: 9})))
}

func TestFormatErrorVerbosity(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	err := Wrap(fmt.Errorf("ENOENT"), CategoryConfig, SeverityError, "cannot read deck.yaml")
	assert.Equal(t, "cannot read deck.yaml", quiet.FormatError(err))
	assert.Equal(t, "config (error): cannot read deck.yaml: ENOENT", verbose.FormatError(err))
}
