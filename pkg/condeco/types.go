package condeco

import (
	"encoding/json"
	"fmt"
	"time"
)

// ResponseCodeSuccess is the CallResponse code the vendor returns for a
// successful operation.
const ResponseCodeSuccess = 100

// CallResponse is the status envelope included in most responses.
type CallResponse struct {
	ResponseCode    int    `json:"ResponseCode"`
	ResponseMessage string `json:"ResponseMessage"`
}

// AttendanceType records where a user is working on a given day.
type AttendanceType int

const (
	AttendancePresentInOffice AttendanceType = 0
	AttendanceWorkingFromHome AttendanceType = 1
	AttendanceOnLeave         AttendanceType = 2
	AttendanceNone            AttendanceType = 3
	AttendanceUnknown         AttendanceType = 4
)

func (a AttendanceType) String() string {
	switch a {
	case AttendancePresentInOffice:
		return "PresentInOffice"
	case AttendanceWorkingFromHome:
		return "WorkingFromHome"
	case AttendanceOnLeave:
		return "OnLeave"
	case AttendanceNone:
		return "None"
	default:
		return "Unknown"
	}
}

// BookingStatus describes what can currently be done with a booking.
type BookingStatus int

const (
	BookingStatusNone           BookingStatus = 0
	BookingStatusReadyToCheckIn BookingStatus = 1
	BookingStatusReadyToRelease BookingStatus = 2
	BookingStatusNotReady       BookingStatus = 3
)

func (s BookingStatus) String() string {
	switch s {
	case BookingStatusReadyToCheckIn:
		return "ReadyToCheckIn"
	case BookingStatusReadyToRelease:
		return "ReadyToRelease"
	case BookingStatusNotReady:
		return "NotReady"
	default:
		return "None"
	}
}

// BookingType is the part of the day a desk booking covers.
type BookingType int

const (
	BookingTypeNone    BookingType = 0
	BookingTypeMorning BookingType = 1
	BookingTypeEvening BookingType = 2
	BookingTypeAllDay  BookingType = 3
)

func (b BookingType) String() string {
	switch b {
	case BookingTypeMorning:
		return "Morning"
	case BookingTypeEvening:
		return "Evening"
	case BookingTypeAllDay:
		return "AllDay"
	default:
		return "None"
	}
}

// CheckInStatus reports whether a booking has been checked in.
type CheckInStatus int

const (
	NotCheckedIn CheckInStatus = 0
	CheckedIn    CheckInStatus = 1
)

func (s CheckInStatus) String() string {
	if s == CheckedIn {
		return "CheckedIn"
	}
	return "NotCheckedIn"
}

// TeamInvitationStatus is a member's response to a team day invitation.
type TeamInvitationStatus int

const (
	InvitationDeclined     TeamInvitationStatus = 0
	InvitationAccepted     TeamInvitationStatus = 1
	InvitationNotResponded TeamInvitationStatus = 2
)

func (s TeamInvitationStatus) String() string {
	switch s {
	case InvitationDeclined:
		return "Declined"
	case InvitationAccepted:
		return "Accepted"
	default:
		return "NotResponded"
	}
}

// WorkspaceType is the kind of bookable space.
type WorkspaceType int

const (
	WorkspaceNone    WorkspaceType = 0
	WorkspaceRoom    WorkspaceType = 1
	WorkspaceDesk    WorkspaceType = 2
	WorkspaceTeamDay WorkspaceType = 3
)

func (w WorkspaceType) String() string {
	switch w {
	case WorkspaceRoom:
		return "Room"
	case WorkspaceDesk:
		return "Desk"
	case WorkspaceTeamDay:
		return "TeamDay"
	default:
		return "None"
	}
}

// dateLayout is the dd/MM/yyyy format the vendor expects everywhere.
const dateLayout = "02/01/2006"

// FormatDate renders a date the way the API wants it.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatStartDate renders a booking start date, which carries the
// booking type after a pipe, e.g. "27/03/2026|3".
func FormatStartDate(t time.Time, bt BookingType) string {
	return fmt.Sprintf("%s|%d", t.Format(dateLayout), int(bt))
}

// Desk booking deletion bounds the day with fixed clock suffixes rather
// than a booking type.
func formatDeleteStart(t time.Time) string {
	return t.Format(dateLayout) + " 00:00 AM"
}

func formatDeleteEnd(t time.Time) string {
	return t.Format(dateLayout) + " 23:59 PM"
}

// SearchedDesk is one result from a desk search.
type SearchedDesk struct {
	DeskID      int    `json:"DeskID"`
	DeskName    string `json:"DeskName"`
	CanBeBooked bool   `json:"CanBeBooked"`
	FloorID     int    `json:"FloorID,omitempty"`
	GroupID     int    `json:"GroupID,omitempty"`
	LocationID  int    `json:"LocationID,omitempty"`
	WSTypeID    int    `json:"WSTypeID,omitempty"`
}

// CreatedBooking is one booking created by a desk booking call.
type CreatedBooking struct {
	BookingID   int    `json:"BookingID"`
	DeskID      int    `json:"DeskID,omitempty"`
	DeskName    string `json:"DeskName,omitempty"`
	BookingType int    `json:"BookingType,omitempty"`
	StartDate   string `json:"StartDate,omitempty"`
}

// Envelope is the generic response for operations whose payload shape
// is not pinned down: the status envelope plus the raw body for callers
// that know what to expect.
type Envelope struct {
	CallResponse CallResponse    `json:"CallResponse"`
	Raw          json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the whole body alongside the decoded envelope.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	type alias struct {
		CallResponse CallResponse `json:"CallResponse"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	e.CallResponse = a.CallResponse
	e.Raw = append(e.Raw[:0], data...)
	return nil
}
