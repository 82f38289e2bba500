package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/deckctl/internal/logfields"
	"git.home.luguber.info/inful/deckctl/internal/watcher"
)

// DevCmd implements the 'dev' command: delegate to the package-script
// runner's dev script, which serves the deck with live reload. Blocks until
// interrupted; the delegate's exit code propagates unchanged.
type DevCmd struct {
	WatchConfig bool `name:"watch-config" help:"Restart the dev server when the configuration file changes."`
}

func (d *DevCmd) Run(_ *Global, root *CLI) error {
	// Setup signal-based context for graceful shutdown
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, mgr, err := LoadManager(root)
	if err != nil {
		return err
	}

	if !d.WatchConfig && !cfg.Dev.WatchConfig {
		return mgr.RunScript(sigctx, cfg.Scripts.Dev)
	}

	return d.runWithConfigWatch(sigctx, root)
}

// runWithConfigWatch restarts the dev delegate whenever the configuration
// file changes. The final exit code is the last child's code.
func (d *DevCmd) runWithConfigWatch(ctx context.Context, root *CLI) error {
	w, err := watcher.New(ConfigPath(root), 0)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Stop(); cerr != nil {
			slog.Warn("Failed to stop config watcher", logfields.Error(cerr))
		}
	}()

	if err := w.Start(ctx); err != nil {
		return err
	}

	for {
		cfg, mgr, err := LoadManager(root)
		if err != nil {
			return err
		}

		runCtx, cancelRun := context.WithCancel(ctx)
		errCh := make(chan error, 1)
		go func() {
			errCh <- mgr.RunScript(runCtx, cfg.Scripts.Dev)
		}()

		select {
		case <-w.Changes():
			slog.Info("Configuration changed, restarting dev server", logfields.Path(ConfigPath(root)))
			cancelRun()
			<-errCh // wait for the old delegate to exit before restarting
		case err := <-errCh:
			// Normal exit or interrupt; either way the child's code propagates.
			cancelRun()
			return err
		}
	}
}
