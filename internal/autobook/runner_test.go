package autobook

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthew1471/condeco-go/internal/config"
	"github.com/matthew1471/condeco-go/pkg/condeco"
)

// fakeBooker scripts search results and booking outcomes per date.
type fakeBooker struct {
	desks      map[string][]condeco.SearchedDesk
	rejectDesk map[int]bool

	searches int
	booked   []int
}

func (f *fakeBooker) SearchDesksByFeatures(ctx context.Context, req condeco.DeskSearchByFeaturesRequest) (*condeco.SearchDesksResponse, error) {
	f.searches++
	return &condeco.SearchDesksResponse{
		CallResponse:  condeco.CallResponse{ResponseCode: condeco.ResponseCodeSuccess},
		SearchedDesks: f.desks[req.StartDate],
	}, nil
}

func (f *fakeBooker) BookDesk(ctx context.Context, req condeco.BookDeskRequest) (*condeco.BookDeskResponse, error) {
	if f.rejectDesk[req.DeskID] {
		return nil, fmt.Errorf("desk %d already taken", req.DeskID)
	}
	f.booked = append(f.booked, req.DeskID)
	return &condeco.BookDeskResponse{
		CallResponse: condeco.CallResponse{ResponseCode: condeco.ResponseCodeSuccess},
		CreatedBookings: []condeco.CreatedBooking{
			{BookingID: 9000 + req.DeskID, DeskID: req.DeskID},
		},
	}, nil
}

func newTestRunner(t *testing.T, booker *fakeBooker) *Runner {
	t.Helper()
	r, err := NewRunner(RunnerConfig{
		Client:   booker,
		AutoBook: config.AutoBook{LocationID: 10, GroupID: 20, FloorID: 30, UserID: 77, WSTypeID: 1},
		Backoff:  backoff.NewConstantBackOff(time.Millisecond),
	})
	require.NoError(t, err)
	return r
}

func TestNewRunner(t *testing.T) {
	_, err := NewRunner(RunnerConfig{})
	require.Error(t, err)
}

func TestRunnerBooksEveryDate(t *testing.T) {
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)

	booker := &fakeBooker{
		desks: map[string][]condeco.SearchedDesk{
			"14/09/2026": {{DeskID: 41, CanBeBooked: true}},
			"18/09/2026": {{DeskID: 42, CanBeBooked: true}},
		},
	}

	r := newTestRunner(t, booker)
	booked, err := r.Run(context.Background(), []time.Time{friday, monday})
	require.NoError(t, err)
	require.Len(t, booked, 2)
	assert.Equal(t, []int{42, 41}, booker.booked)
}

func TestRunnerSkipsRejectedDesks(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	booker := &fakeBooker{
		desks: map[string][]condeco.SearchedDesk{
			"14/09/2026": {
				{DeskID: 41, CanBeBooked: false},
				{DeskID: 42, CanBeBooked: true},
				{DeskID: 43, CanBeBooked: true},
			},
		},
		rejectDesk: map[int]bool{42: true},
	}

	r := newTestRunner(t, booker)
	booked, err := r.Run(context.Background(), []time.Time{date})
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, 43, booked[0].DeskID)
}

func TestRunnerRequeuesUntilSlotsAppear(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	// No desks at first; the slot appears on the third pass.
	booker := &fakeBooker{desks: map[string][]condeco.SearchedDesk{}}
	slow := &slotReleasingBooker{fakeBooker: booker, releaseOnSearch: 3}

	r, err := NewRunner(RunnerConfig{
		Client:  slow,
		Backoff: backoff.NewConstantBackOff(time.Millisecond),
	})
	require.NoError(t, err)

	booked, err := r.Run(context.Background(), []time.Time{date})
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, 3, booker.searches)
}

// slotReleasingBooker returns no desks until the nth search.
type slotReleasingBooker struct {
	*fakeBooker
	releaseOnSearch int
}

func (s *slotReleasingBooker) SearchDesksByFeatures(ctx context.Context, req condeco.DeskSearchByFeaturesRequest) (*condeco.SearchDesksResponse, error) {
	if s.searches+1 >= s.releaseOnSearch {
		s.desks[req.StartDate] = []condeco.SearchedDesk{{DeskID: 41, CanBeBooked: true}}
	}
	return s.fakeBooker.SearchDesksByFeatures(ctx, req)
}

func TestRunnerExhaustsBudget(t *testing.T) {
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)

	booker := &fakeBooker{} // never any desks

	r, err := NewRunner(RunnerConfig{
		Client:    booker,
		MaxPasses: 4,
		Backoff:   backoff.NewConstantBackOff(time.Millisecond),
	})
	require.NoError(t, err)

	booked, err := r.Run(context.Background(), []time.Time{friday, monday})
	require.Error(t, err)
	assert.Empty(t, booked)
	assert.Equal(t, 4, booker.searches)
	assert.Contains(t, err.Error(), "14/09/2026")
	assert.Contains(t, err.Error(), "18/09/2026")
}

func TestRunnerStopsOnCancel(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	booker := &fakeBooker{}

	r, err := NewRunner(RunnerConfig{
		Client:  booker,
		Backoff: backoff.NewConstantBackOff(time.Hour),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, runErr := r.Run(ctx, []time.Time{date})
		assert.ErrorIs(t, runErr, context.Canceled)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancellation")
	}
}
