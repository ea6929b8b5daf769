// Package version prints the CLI version.
package version

import (
	"github.com/matthew1471/condeco-go/internal/cmd/base"
	buildversion "github.com/matthew1471/condeco-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: condeco version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(buildversion.Version)
	return 0
}
