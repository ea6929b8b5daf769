// Package checkin checks the user in to a booked desk.
package checkin

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
	flagQR     int
}

func (c *Command) Synopsis() string {
	return "Check in to a booked desk"
}

func (c *Command) Help() string {
	return `Usage: condeco checkin -desk=<id> -qr=<code>

  Checks in to a desk using the QR code printed on it. The location is
  taken from the examples section of the configuration file.
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("checkin", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", config.DefaultPath,
		"Path to the configuration file",
	)
	f.IntVar(
		&c.flagDesk, "desk", 0,
		"Desk ID to check in to (default: examples.desk_id)",
	)
	f.IntVar(
		&c.flagQR, "qr", 0,
		"QR code on the desk",
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
	if deskID == 0 || c.flagQR == 0 {
		c.UI.Error("desk ID and QR code are required")
		return 1
	}

	if _, err := client.CheckIn(context.Background(),
		cfg.Examples.LocationID, deskID, c.flagQR); err != nil {
		c.UI.Error(fmt.Sprintf("check-in failed: %v", err))
		return 1
	}
	c.UI.Info(fmt.Sprintf("✓ Checked in to desk #%d", deskID))
	return 0
}
