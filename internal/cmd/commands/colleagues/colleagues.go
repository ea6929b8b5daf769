// Package colleagues looks up colleagues' bookings.
package colleagues

import (
	"context"
	"flag"
	"fmt"

	"github.com/matthew1471/condeco-go/internal/cmd/base"
	"github.com/matthew1471/condeco-go/internal/config"
)

type Command struct {
	*base.Command

	flagConfig string
	flagName   string
}

func (c *Command) Synopsis() string {
	return "Find a colleague's bookings by name"
}

func (c *Command) Help() string {
	return `Usage: condeco colleagues -name=<name>

  Searches for a colleague by name and prints their booking
  information as returned by the instance.
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("colleagues", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", config.DefaultPath,
		"Path to the configuration file",
	)
	f.StringVar(
		&c.flagName, "name", "",
		"Colleague name to search for (default: examples.name)",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	_, cfg, client, err := c.LoadClient(c.flagConfig)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if err := c.RequireAuthenticated(cfg); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	name := c.flagName
	if name == "" {
		name = cfg.Examples.Name
	}
	if name == "" {
		c.UI.Error("name is required (-name or examples.name)")
		return 1
	}

	resp, err := client.FindColleague(context.Background(), name)
	if err != nil {
		c.UI.Error(fmt.Sprintf("colleague search failed: %v", err))
		return 1
	}
	c.UI.Output(string(resp.Raw))
	return 0
}
