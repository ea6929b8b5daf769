// Package autobook books personal desks on a weekly rhythm: desks for
// the Monday and Friday three weeks out, grabbed as soon as the vendor
// releases the slots.
package autobook

import "time"

// WeeksAhead is how far out slots are booked. The vendor releases
// bookable slots three weeks in advance, so the race is for that week.
const WeeksAhead = 3

// Plan returns the dates to book, in booking order, for the week that
// starts WeeksAhead weeks from today's Monday. Friday is attempted
// first: it is the scarcer slot.
func Plan(today time.Time) []time.Time {
	monday := startOfWeek(today).AddDate(0, 0, 7*WeeksAhead)
	friday := monday.AddDate(0, 0, 4)
	return []time.Time{friday, monday}
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset)
}

// NextWeekday returns the next occurrence of the given weekday strictly
// after t, mirroring how the example scripts pick a default booking
// date.
func NextWeekday(t time.Time, day time.Weekday) time.Time {
	ahead := (int(day) - int(t.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return t.AddDate(0, 0, ahead)
}
