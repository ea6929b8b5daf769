package autobook

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/matthew1471/condeco-go/internal/config"
	"github.com/matthew1471/condeco-go/pkg/condeco"
)

// Booker is the slice of the Condeco client the runner needs.
type Booker interface {
	SearchDesksByFeatures(ctx context.Context, req condeco.DeskSearchByFeaturesRequest) (*condeco.SearchDesksResponse, error)
	BookDesk(ctx context.Context, req condeco.BookDeskRequest) (*condeco.BookDeskResponse, error)
}

// Runner repeatedly attempts to book the planned dates until they are
// all booked or the attempt budget runs out.
type Runner struct {
	client  Booker
	autoCfg config.AutoBook
	logger  hclog.Logger

	// maxPasses bounds the retry loop: with the 5 second failure
	// back-off this is roughly a two minute window after the vendor
	// releases new slots.
	maxPasses int
	backoff   backoff.BackOff
}

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	Client   Booker
	AutoBook config.AutoBook
	Logger   hclog.Logger

	// MaxPasses caps booking attempts across all dates. Default: 24.
	MaxPasses int

	// Backoff waits between consecutive failed attempts.
	// Default: constant 5 seconds.
	Backoff backoff.BackOff
}

// NewRunner creates a Runner.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("autobook: client is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if cfg.MaxPasses == 0 {
		cfg.MaxPasses = 24
	}
	if cfg.Backoff == nil {
		cfg.Backoff = backoff.NewConstantBackOff(5 * time.Second)
	}
	return &Runner{
		client:    cfg.Client,
		autoCfg:   cfg.AutoBook,
		logger:    cfg.Logger.Named("autobook"),
		maxPasses: cfg.MaxPasses,
		backoff:   cfg.Backoff,
	}, nil
}

// Run books every date in the plan. Dates that cannot be booked yet are
// requeued; after two failures in a row the runner backs off before
// the next attempt. It returns the bookings made, and an error
// aggregating the dates still unbooked when the budget ran out.
func (r *Runner) Run(ctx context.Context, dates []time.Time) ([]condeco.CreatedBooking, error) {
	pending := append([]time.Time(nil), dates...)
	var booked []condeco.CreatedBooking
	lastAttemptFailed := false
	r.backoff.Reset()

	for pass := 0; pass < r.maxPasses && len(pending) > 0; pass++ {
		date := pending[0]
		pending = pending[1:]

		r.logger.Info("attempting booking", "date", condeco.FormatDate(date))

		b, err := r.bookSingleDay(ctx, date)
		if err == nil {
			booked = append(booked, *b)
			r.logger.Info("booked", "date", condeco.FormatDate(date), "booking_id", b.BookingID)
			lastAttemptFailed = false
			r.backoff.Reset()
			continue
		}
		if ctx.Err() != nil {
			return booked, ctx.Err()
		}

		r.logger.Warn("booking attempt failed", "date", condeco.FormatDate(date), "error", err)
		pending = append(pending, date)

		// Back off only on repeated failures, so a fresh slot release
		// is caught quickly.
		if lastAttemptFailed {
			select {
			case <-ctx.Done():
				return booked, ctx.Err()
			case <-time.After(r.backoff.NextBackOff()):
			}
		}
		lastAttemptFailed = true
	}

	if len(pending) > 0 {
		var merr *multierror.Error
		for _, date := range pending {
			merr = multierror.Append(merr,
				fmt.Errorf("no bookable desk for %s", condeco.FormatDate(date)))
		}
		return booked, merr.ErrorOrNil()
	}
	return booked, nil
}

// bookSingleDay searches the configured floor and books the first desk
// that can be booked, as an all-day booking.
func (r *Runner) bookSingleDay(ctx context.Context, date time.Time) (*condeco.CreatedBooking, error) {
	search, err := r.client.SearchDesksByFeatures(ctx, condeco.DeskSearchByFeaturesRequest{
		LocationID:  r.autoCfg.LocationID,
		GroupID:     r.autoCfg.GroupID,
		FloorID:     r.autoCfg.FloorID,
		BookingType: int(condeco.BookingTypeNone),
		StartDate:   condeco.FormatDate(date),
		UserID:      r.autoCfg.UserID,
		WSTypeID:    r.autoCfg.WSTypeID,
	})
	if err != nil {
		return nil, fmt.Errorf("desk search failed: %w", err)
	}

	for _, desk := range search.SearchedDesks {
		if !desk.CanBeBooked {
			continue
		}
		r.logger.Debug("trying desk", "desk", desk.DeskName, "desk_id", desk.DeskID)

		resp, err := r.client.BookDesk(ctx, condeco.BookDeskRequest{
			LocationID:  r.autoCfg.LocationID,
			GroupID:     r.autoCfg.GroupID,
			FloorID:     r.autoCfg.FloorID,
			DeskID:      desk.DeskID,
			Date:        date,
			BookingType: condeco.BookingTypeAllDay,
		})
		if err != nil {
			// Someone else got the desk first; try the next one.
			r.logger.Debug("desk booking rejected", "desk_id", desk.DeskID, "error", err)
			continue
		}
		if len(resp.CreatedBookings) > 0 {
			return &resp.CreatedBookings[0], nil
		}
	}
	return nil, fmt.Errorf("no desk could be booked")
}
