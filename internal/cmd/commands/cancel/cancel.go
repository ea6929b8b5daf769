// Package cancel deletes a desk booking.
package cancel

import (
	"context"
	"flag"
	"fmt"

	"github.com/matthew1471/condeco-go/internal/cmd/base"
	"github.com/matthew1471/condeco-go/internal/config"
	"github.com/matthew1471/condeco-go/pkg/condeco"
)

type Command struct {
	*base.Command

	flagConfig  string
	flagBooking int
	flagDesk    int
	flagDate    string
}

func (c *Command) Synopsis() string {
	return "Cancel a desk booking"
}

func (c *Command) Help() string {
	return `Usage: condeco cancel -booking=<id> -desk=<id> -date=<date>

  Cancels an all-day desk booking.
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("cancel", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", config.DefaultPath,
		"Path to the configuration file",
	)
	f.IntVar(
		&c.flagBooking, "booking", 0,
		"Booking ID to cancel (default: examples.booking_id from the configuration)",
	)
	f.IntVar(
		&c.flagDesk, "desk", 0,
		"Desk ID the booking is for (default: examples.desk_id)",
	)
	f.StringVar(
		&c.flagDate, "date", "",
		"Date of the booking",
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

	bookingID := c.flagBooking
	if bookingID == 0 {
		bookingID = cfg.Examples.BookingID
	}
	deskID := c.flagDesk
	if deskID == 0 {
		deskID = cfg.Examples.DeskID
	}
	if bookingID == 0 || deskID == 0 || c.flagDate == "" {
		c.UI.Error("booking ID, desk ID and date are all required")
		return 1
	}

	date, err := base.ParseDate(c.flagDate)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if _, err := client.DeleteDeskBooking(context.Background(),
		bookingID, deskID, date, condeco.BookingTypeAllDay); err != nil {
		c.UI.Error(fmt.Sprintf("cancellation failed: %v", err))
		return 1
	}
	c.UI.Info(fmt.Sprintf("✓ Cancelled booking #%d", bookingID))
	return 0
}
