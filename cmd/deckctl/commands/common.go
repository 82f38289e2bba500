package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/deckctl/internal/config"
	deckerrors "git.home.luguber.info/inful/deckctl/internal/errors"
	"git.home.luguber.info/inful/deckctl/internal/pm"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"deck.yaml"`
	Dir     string           `short:"C" name:"dir" help:"Deck project directory" default:"."`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Help    HelpCmd    `cmd:"" default:"1" help:"Show the available commands"`
	Dev     DevCmd     `cmd:"" help:"Start the presentation dev server with live reload"`
	Build   BuildCmd   `cmd:"" help:"Build the static presentation site"`
	Export  ExportCmd  `cmd:"" help:"Export the presentation to PDF"`
	Install InstallCmd `cmd:"" help:"Install presentation dependencies"`
	Clean   CleanCmd   `cmd:"" help:"Remove the dependency directory"`
	Doctor  DoctorCmd  `cmd:"" help:"Check the local toolchain without changing anything"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ConfigPath resolves the configuration file location. The default filename
// follows the project directory; an explicit -c path is used as given.
func ConfigPath(root *CLI) string {
	if root.Config == "deck.yaml" && root.Dir != "." {
		return filepath.Join(root.Dir, "deck.yaml")
	}
	return root.Config
}

// LoadManager loads the configuration and builds the package manager for the
// project directory. Shared by every delegating command.
func LoadManager(root *CLI) (*config.Config, *pm.Manager, error) {
	cfg, err := config.Load(ConfigPath(root))
	if err != nil {
		return nil, nil, deckerrors.Wrap(err, deckerrors.CategoryConfig, deckerrors.SeverityError,
			"cannot load configuration")
	}

	mgr := pm.New(pm.Resolve(cfg, root.Dir), root.Dir, cfg.DepsDir)
	return cfg, mgr, nil
}
