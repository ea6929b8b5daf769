// Package search finds bookable desks for a date.
package search

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
}

func (c *Command) Synopsis() string {
	return "Search for bookable desks on the configured floor"
}

func (c *Command) Help() string {
	return `Usage: condeco search

  Searches the floor configured in the examples section for desks and
  reports which of them can be booked on the given date.
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("search", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", config.DefaultPath,
		"Path to the configuration file",
	)
	f.StringVar(
		&c.flagDate, "date", "",
		"Date to search (default: next Monday)",
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

	ex := cfg.Examples
	resp, err := client.SearchDesks(context.Background(), condeco.SearchDesksRequest{
		UserID:      &ex.UserID,
		LocationID:  ex.LocationID,
		GroupID:     ex.GroupID,
		FloorID:     ex.FloorID,
		Date:        date,
		BookingType: condeco.BookingTypeAllDay,
		WSTypeID:    &ex.WSTypeID,
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("desk search failed: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Desks on %s:", condeco.FormatDate(date)))
	for _, desk := range resp.SearchedDesks {
		marker := " "
		if desk.CanBeBooked {
			marker = "✓"
		}
		c.UI.Output(fmt.Sprintf("  %s %s (#%d)", marker, desk.DeskName, desk.DeskID))
	}
	return 0
}
