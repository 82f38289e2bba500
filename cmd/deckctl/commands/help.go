package commands

import (
	"fmt"
	"io"
	"os"
)

// HelpCmd prints the usage banner. It is the default command so a bare
// `deckctl` invocation prints the banner and exits 0.
type HelpCmd struct{}

// Banner is the static usage text listing the documented operations.
func Banner() string {
	return `deckctl - build wrapper for the slide deck

Usage: deckctl <command>

Commands:
  dev      Start the presentation dev server with live reload
  build    Build the static presentation site
  export   Export the presentation to PDF
  install  Install presentation dependencies
  clean    Remove the dependency directory
  doctor   Check the local toolchain without changing anything
  init     Initialize a new configuration file

Run 'deckctl --help' for flags.
`
}

func (h *HelpCmd) Run(_ *Global, _ *CLI) error {
	return WriteBanner(os.Stdout)
}

// WriteBanner writes the banner to w.
func WriteBanner(w io.Writer) error {
	_, err := fmt.Fprint(w, Banner())
	return err
}
