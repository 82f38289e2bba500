package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/deckctl/cmd/deckctl/commands"
	deckerrors "git.home.luguber.info/inful/deckctl/internal/errors"
	"git.home.luguber.info/inful/deckctl/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("deckctl"),
		kong.Description("Build wrapper for a markdown slide deck: delegates dev, build, export and install to the presentation toolchain."),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli)

	adapter := deckerrors.NewCLIErrorAdapter(cli.Verbose, nil)
	adapter.HandleError(err)
}
