// Package bookings lists the user's upcoming bookings.
package bookings

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/matthew1471/condeco-go/internal/cmd/base"
	"github.com/matthew1471/condeco-go/internal/config"
	"github.com/matthew1471/condeco-go/pkg/condeco"
)

type Command struct {
	*base.Command

	flagConfig   string
	flagDays     int
	flagTimeZone string
}

func (c *Command) Synopsis() string {
	return "List upcoming desk and room bookings"
}

func (c *Command) Help() string {
	return `Usage: condeco bookings

  Lists the authenticated user's desk and room bookings from today
  forward.
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("bookings", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", config.DefaultPath,
		"Path to the configuration file",
	)
	f.IntVar(
		&c.flagDays, "days", 14,
		"How many days ahead to list",
	)
	f.StringVar(
		&c.flagTimeZone, "timezone", "",
		"Time zone identifier to resolve booking times in",
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

	now := time.Now()
	resp, err := client.ListBookings(context.Background(), condeco.ListBookingsRequest{
		DeskStartDate: now,
		DeskEndDate:   now.AddDate(0, 0, c.flagDays),
		RoomStartDate: now,
		TimeZoneID:    c.flagTimeZone,
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to list bookings: %v", err))
		return 1
	}

	if len(resp.DeskBookings) == 0 {
		c.UI.Output("No desk bookings.")
		return 0
	}
	for _, b := range resp.DeskBookings {
		c.UI.Output(fmt.Sprintf("#%-8d %-20s %s  %s",
			b.BookingID, b.DeskName, b.StartDate,
			condeco.BookingStatus(b.BookingStatus)))
	}
	return 0
}
