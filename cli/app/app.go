package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/merklenet/statetrie/cli/state"
	"github.com/merklenet/statetrie/pkg/config"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "statetrie\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a statetrie instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "statetrie"
	ctl.Version = config.Version
	ctl.Usage = "Merkle Patricia Trie state commitment tool"
	ctl.ErrWriter = os.Stdout
	// Exit errors are returned from Run instead of terminating the process.
	ctl.ExitErrHandler = func(*cli.Context, error) {}

	ctl.Commands = append(ctl.Commands, state.NewCommands()...)
	return ctl
}
