package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
)

// BuildCmd implements the 'build' command: delegate to the production-build
// script. Fails when the delegate fails (e.g. malformed slide content); the
// delegate's exit code propagates unchanged.
type BuildCmd struct{}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, mgr, err := LoadManager(root)
	if err != nil {
		return err
	}

	if err := mgr.RunScript(sigctx, cfg.Scripts.Build); err != nil {
		return err
	}

	fmt.Println("Build completed successfully")
	return nil
}
