// Package pm abstracts the project-local package manager (npm, pnpm or
// yarn): script delegation, dependency installation and dependency
// directory removal.
package pm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/deckctl/internal/config"
	"git.home.luguber.info/inful/deckctl/internal/logfields"
	"git.home.luguber.info/inful/deckctl/internal/runner"
)

// Manager drives one package manager for one project directory.
type Manager struct {
	kind       config.ManagerKind
	projectDir string
	depsDir    string
	run        *runner.Runner
}

// New creates a manager. depsDir is resolved relative to projectDir unless absolute.
func New(kind config.ManagerKind, projectDir, depsDir string) *Manager {
	if !filepath.IsAbs(depsDir) {
		depsDir = filepath.Join(projectDir, depsDir)
	}
	return &Manager{
		kind:       kind,
		projectDir: projectDir,
		depsDir:    depsDir,
		run:        runner.New(projectDir),
	}
}

// Detect picks a package manager from lockfiles in the project directory.
// pnpm-lock.yaml wins over yarn.lock; npm is the fallback.
func Detect(projectDir string) config.ManagerKind {
	if _, err := os.Stat(filepath.Join(projectDir, "pnpm-lock.yaml")); err == nil {
		return config.ManagerPnpm
	}
	if _, err := os.Stat(filepath.Join(projectDir, "yarn.lock")); err == nil {
		return config.ManagerYarn
	}
	return config.ManagerNpm
}

// Resolve returns the configured manager kind, or lockfile detection when
// the configuration leaves it empty.
func Resolve(cfg *config.Config, projectDir string) config.ManagerKind {
	if cfg.PackageManager != "" {
		return config.ManagerKind(cfg.PackageManager)
	}
	kind := Detect(projectDir)
	slog.Debug("Detected package manager from lockfiles", logfields.Manager(string(kind)))
	return kind
}

// Kind returns the manager kind.
func (m *Manager) Kind() config.ManagerKind {
	return m.kind
}

// Binary returns the executable name for this manager.
func (m *Manager) Binary() string {
	return string(m.kind)
}

// DepsDir returns the resolved dependency directory path.
func (m *Manager) DepsDir() string {
	return m.depsDir
}

// ScriptArgs builds the argv (after the binary) for running a named script.
// No arguments beyond the documented script invocation are injected.
func (m *Manager) ScriptArgs(script string) []string {
	return []string{"run", script}
}

// RunScript delegates to `<manager> run <script>`. The delegate's exit code
// propagates through a runner.ExitError.
func (m *Manager) RunScript(ctx context.Context, script string) error {
	slog.Info("Running package script",
		logfields.Manager(m.Binary()),
		logfields.Script(script))
	return m.run.Run(ctx, m.Binary(), m.ScriptArgs(script)...)
}

// Install delegates to the manager's dependency-installation command.
func (m *Manager) Install(ctx context.Context) error {
	slog.Info("Installing dependencies", logfields.Manager(m.Binary()))
	return m.run.Run(ctx, m.Binary(), "install")
}

// RemoveDeps deletes the dependency directory. Idempotent: returns
// removed=false without error when the directory is already absent.
func (m *Manager) RemoveDeps() (bool, error) {
	if _, err := os.Stat(m.depsDir); os.IsNotExist(err) {
		slog.Debug("Dependency directory already absent", logfields.Path(m.depsDir))
		return false, nil
	}

	if err := os.RemoveAll(m.depsDir); err != nil {
		return false, fmt.Errorf("failed to remove dependency directory: %w", err)
	}

	slog.Info("Removed dependency directory", logfields.Path(m.depsDir))
	return true, nil
}

// HasDeps reports whether the dependency directory exists.
func (m *Manager) HasDeps() bool {
	info, err := os.Stat(m.depsDir)
	return err == nil && info.IsDir()
}
