package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
)

// InstallCmd implements the 'install' command: delegate to the package
// manager's dependency installation. Network and registry failures surface
// as the delegate's exit code.
type InstallCmd struct{}

func (i *InstallCmd) Run(_ *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_, mgr, err := LoadManager(root)
	if err != nil {
		return err
	}

	if err := mgr.Install(sigctx); err != nil {
		return err
	}

	fmt.Println("Dependencies installed")
	return nil
}
