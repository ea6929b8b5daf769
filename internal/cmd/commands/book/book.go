// Package book books a specific desk for a day.
package book

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/matthew1471/condeco-go/internal/autobook"
	"github.com/matthew1471/condeco-go/internal/cmd/base"
	"github.com/matthew1471/condeco-go/internal/config"
	"github.com/matthew1471/condeco-go/pkg/condeco"
)

type Command struct {
	*base.Command

	flagConfig string
	flagDate   string
	flagDesk   int
}

func (c *Command) Synopsis() string {
	return "Book a desk for a day"
}

func (c *Command) Help() string {
	return `Usage: condeco book

  Books a desk as an all-day booking using the location, group and
  floor from the examples section of the configuration file.
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("book", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", config.DefaultPath,
		"Path to the configuration file",
	)
	f.StringVar(
		&c.flagDate, "date", "",
		"Date to book (default: next Monday)",
	)
	f.IntVar(
		&c.flagDesk, "desk", 0,
		"Desk ID to book (default: examples.desk_id from the configuration)",
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

	date := autobook.NextWeekday(time.Now(), time.Monday)
	if c.flagDate != "" {
		if date, err = base.ParseDate(c.flagDate); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
	}

	deskID := c.flagDesk
	if deskID == 0 {
		deskID = cfg.Examples.DeskID
	}
	if deskID == 0 {
		c.UI.Error("desk ID is required (-desk or examples.desk_id)")
		return 1
	}

	ex := cfg.Examples
	resp, err := client.BookDesk(context.Background(), condeco.BookDeskRequest{
		UserID:      &ex.UserID,
		LocationID:  ex.LocationID,
		GroupID:     ex.GroupID,
		FloorID:     ex.FloorID,
		DeskID:      deskID,
		Date:        date,
		BookingType: condeco.BookingTypeAllDay,
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("booking failed: %v", err))
		return 1
	}

	for _, b := range resp.CreatedBookings {
		c.UI.Info(fmt.Sprintf("✓ Booked %s on %s (#%d)",
			b.DeskName, condeco.FormatDate(date), b.BookingID))
	}
	return 0
}
