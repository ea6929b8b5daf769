// Package autobook is the CLI wrapper around the weekly auto-booker.
package autobook

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/matthew1471/condeco-go/internal/autobook"
	"github.com/matthew1471/condeco-go/internal/cmd/base"
	"github.com/matthew1471/condeco-go/internal/config"
	"github.com/matthew1471/condeco-go/pkg/condeco"
)

type Command struct {
	*base.Command

	flagConfig string
	flagDates  dateList
}

// dateList accumulates repeated -date flags.
type dateList []time.Time

func (d *dateList) String() string { return fmt.Sprintf("%v", []time.Time(*d)) }

func (d *dateList) Set(s string) error {
	t, err := base.ParseDate(s)
	if err != nil {
		return err
	}
	*d = append(*d, t)
	return nil
}

func (c *Command) Synopsis() string {
	return "Book desks for the Monday and Friday three weeks out"
}

func (c *Command) Help() string {
	return `Usage: condeco autobook

  Books a desk for the Monday and Friday of the week three weeks from
  now, using the floor and workspace type from the auto_book section of
  the configuration file. Dates whose slots are not yet released are
  retried with a back-off for roughly two minutes.
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("autobook", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", config.DefaultPath,
		"Path to the configuration file",
	)
	f.Var(
		&c.flagDates, "date",
		"Book this date instead of the planned week; may be repeated",
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

	dates := []time.Time(c.flagDates)
	if len(dates) == 0 {
		dates = autobook.Plan(time.Now())
	}
	for _, d := range dates {
		c.UI.Info(fmt.Sprintf("Booking planned for %s", condeco.FormatDate(d)))
	}

	runner, err := autobook.NewRunner(autobook.RunnerConfig{
		Client:   client,
		AutoBook: cfg.AutoBook,
		Logger:   c.Log,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	booked, err := runner.Run(ctx, dates)
	for _, b := range booked {
		c.UI.Info(fmt.Sprintf("✓ Booked %s (#%d)", b.DeskName, b.BookingID))
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("unable to book one or more dates: %v", err))
		return 1
	}
	c.UI.Info("Finished, booking completed successfully.")
	return 0
}
