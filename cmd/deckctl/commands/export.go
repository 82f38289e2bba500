package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
)

// ExportCmd implements the 'export' command: delegate to the PDF-export
// script. May fail when the export dependency chain (headless browser) is
// unavailable; that failure is the delegate's to report.
type ExportCmd struct{}

func (e *ExportCmd) Run(_ *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, mgr, err := LoadManager(root)
	if err != nil {
		return err
	}

	if err := mgr.RunScript(sigctx, cfg.Scripts.Export); err != nil {
		return err
	}

	fmt.Println("Export completed successfully")
	return nil
}
