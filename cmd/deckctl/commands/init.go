package commands

import (
	"fmt"

	"git.home.luguber.info/inful/deckctl/internal/config"
	deckerrors "git.home.luguber.info/inful/deckctl/internal/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	cfgPath := ConfigPath(root)
	fmt.Printf("Writing configuration to %s\n", cfgPath)
	if err := config.Init(cfgPath, i.Force); err != nil {
		return deckerrors.ConfigError(err.Error())
	}
	fmt.Println("Initialized successfully")
	return nil
}
