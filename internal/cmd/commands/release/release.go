// Package release returns a booked desk to the pool.
package release

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
	flagDesk   int
}

func (c *Command) Synopsis() string {
	return "Release a booked desk"
}

func (c *Command) Help() string {
	return `Usage: condeco release -desk=<id>

  Releases a booked desk back to the pool. The location is taken from
  the examples section of the configuration file.
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("release", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", config.DefaultPath,
		"Path to the configuration file",
	)
	f.IntVar(
		&c.flagDesk, "desk", 0,
		"Desk ID to release (default: examples.desk_id)",
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

	deskID := c.flagDesk
	if deskID == 0 {
		deskID = cfg.Examples.DeskID
	}
	if deskID == 0 {
		c.UI.Error("desk ID is required (-desk or examples.desk_id)")
		return 1
	}

	if _, err := client.ReleaseDesk(context.Background(),
		cfg.Examples.LocationID, deskID); err != nil {
		c.UI.Error(fmt.Sprintf("release failed: %v", err))
		return 1
	}
	c.UI.Info(fmt.Sprintf("✓ Released desk #%d", deskID))
	return 0
}
