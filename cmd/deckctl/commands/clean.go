package commands

import (
	"fmt"

	deckerrors "git.home.luguber.info/inful/deckctl/internal/errors"
)

// CleanCmd implements the 'clean' command: remove the dependency directory
// and print a confirmation. Idempotent: exits 0 when the directory is
// already absent.
type CleanCmd struct{}

func (c *CleanCmd) Run(_ *Global, root *CLI) error {
	_, mgr, err := LoadManager(root)
	if err != nil {
		return err
	}

	removed, err := mgr.RemoveDeps()
	if err != nil {
		return deckerrors.Wrap(err, deckerrors.CategoryFileSystem, deckerrors.SeverityError,
			"cannot remove dependency directory")
	}

	if removed {
		fmt.Printf("Removed %s\n", mgr.DepsDir())
	} else {
		fmt.Printf("Nothing to remove, %s is already absent\n", mgr.DepsDir())
	}
	fmt.Println("Clean complete")
	return nil
}
