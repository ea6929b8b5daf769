package condeco

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const deskService = "/MobileAPI/DeskBookingService.svc"

// The desk service mutates through GET endpoints, so writes go through
// sendJSON-style single attempts: a retried Book could double-book.

// BookDeskRequest books a desk for a day.
type BookDeskRequest struct {
	// UserID books on behalf of another user when set.
	UserID      *int
	LocationID  int
	GroupID     int
	FloorID     int
	DeskID      int
	Date        time.Time
	BookingType BookingType
}

// BookDeskResponse lists the bookings a successful call created.
type BookDeskResponse struct {
	CallResponse    CallResponse     `json:"CallResponse"`
	CreatedBookings []CreatedBooking `json:"CreatedBookings"`
}

// BookDesk books a desk. The vendor exposes this as a GET; it is issued
// exactly once regardless of the retry configuration.
func (c *Client) BookDesk(ctx context.Context, req BookDeskRequest) (*BookDeskResponse, error) {
	q := c.sessionQuery("accessToken")
	if req.UserID != nil {
		q.Set("userID", strconv.Itoa(*req.UserID))
	}
	q.Set("locationID", strconv.Itoa(req.LocationID))
	q.Set("groupID", strconv.Itoa(req.GroupID))
	q.Set("floorID", strconv.Itoa(req.FloorID))
	q.Set("deskID", strconv.Itoa(req.DeskID))
	q.Set("startDate", FormatStartDate(req.Date, req.BookingType))

	var out BookDeskResponse
	if err := c.getOnce(ctx, deskService+"/Book", q, &out); err != nil {
		return nil, fmt.Errorf("book desk: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDeskBooking cancels a desk booking for a day.
func (c *Client) DeleteDeskBooking(ctx context.Context, bookingID, deskID int, date time.Time, bt BookingType) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("bookingID", strconv.Itoa(bookingID))
	q.Set("deskID", strconv.Itoa(deskID))
	q.Set("startDate", formatDeleteStart(date))
	q.Set("endDate", formatDeleteEnd(date))
	q.Set("bookingType", strconv.Itoa(int(bt)))

	var out Envelope
	if err := c.getOnce(ctx, deskService+"/Delete", q, &out); err != nil {
		return nil, fmt.Errorf("delete desk booking: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckIn checks in to a desk using the QR code printed on it.
func (c *Client) CheckIn(ctx context.Context, locationID, deskID, qrCode int) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("locationID", strconv.Itoa(locationID))
	q.Set("deskID", strconv.Itoa(deskID))
	q.Set("qrCode", strconv.Itoa(qrCode))

	var out Envelope
	if err := c.getOnce(ctx, deskService+"/CheckIn", q, &out); err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeoFencingCheckIn checks in by reported location.
func (c *Client) GeoFencingCheckIn(ctx context.Context, locations string) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("locations", locations)

	var out Envelope
	if err := c.getOnce(ctx, deskService+"/GeoFencingCheckIn", q, &out); err != nil {
		return nil, fmt.Errorf("geofencing check in: %w", err)
	}
	return &out, nil
}

// ReleaseDesk releases a booked desk back to the pool.
func (c *Client) ReleaseDesk(ctx context.Context, locationID, deskID int) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("locationID", strconv.Itoa(locationID))
	q.Set("deskID", strconv.Itoa(deskID))

	var out Envelope
	if err := c.getOnce(ctx, deskService+"/Release", q, &out); err != nil {
		return nil, fmt.Errorf("release desk: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchDesksRequest is a plain desk availability search.
type SearchDesksRequest struct {
	UserID      *int
	LocationID  int
	GroupID     int
	FloorID     int
	Date        time.Time
	BookingType BookingType
	WSTypeID    *int
}

// SearchDesksResponse lists desks matching a search.
type SearchDesksResponse struct {
	CallResponse  CallResponse   `json:"CallResponse"`
	SearchedDesks []SearchedDesk `json:"SearchedDesks"`
}

// SearchDesks searches for bookable desks on a floor.
func (c *Client) SearchDesks(ctx context.Context, req SearchDesksRequest) (*SearchDesksResponse, error) {
	q := c.sessionQuery("accessToken")
	if req.UserID != nil {
		q.Set("userId", strconv.Itoa(*req.UserID))
	}
	q.Set("locationID", strconv.Itoa(req.LocationID))
	q.Set("groupId", strconv.Itoa(req.GroupID))
	q.Set("floorId", strconv.Itoa(req.FloorID))
	q.Set("startDate", FormatDate(req.Date))
	q.Set("bookingType", strconv.Itoa(int(req.BookingType)))
	if req.WSTypeID != nil {
		q.Set("WSTypeId", strconv.Itoa(*req.WSTypeID))
	}

	var out SearchDesksResponse
	if err := c.getJSON(ctx, deskService+"/Search", q, &out); err != nil {
		return nil, fmt.Errorf("search desks: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeskSearchByFeaturesRequest searches desks filtered by attributes.
// The session token travels in the body for this endpoint.
type DeskSearchByFeaturesRequest struct {
	SessionToken   string `json:"accessToken"`
	LocationID     int    `json:"locationID"`
	GroupID        int    `json:"groupID"`
	FloorID        int    `json:"floorID"`
	BookingType    int    `json:"bookingType"`
	StartDate      string `json:"startDate"`
	UserID         int    `json:"userID"`
	DeskAttributes []int  `json:"deskAttributes"`
	WSTypeID       int    `json:"wsTypeID"`
}

// SearchDesksByFeatures searches desks by workspace type and desk
// attributes. A zero SessionToken is filled in from the client.
func (c *Client) SearchDesksByFeatures(ctx context.Context, req DeskSearchByFeaturesRequest) (*SearchDesksResponse, error) {
	if req.SessionToken == "" {
		req.SessionToken = c.sessionToken
	}
	if req.DeskAttributes == nil {
		req.DeskAttributes = []int{}
	}

	var out SearchDesksResponse
	if err := c.sendJSON(ctx, "POST", deskService+"/DeskSearchByFeatures", req, &out); err != nil {
		return nil, fmt.Errorf("search desks by features: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindColleague looks up a colleague's bookings by name.
func (c *Client) FindColleague(ctx context.Context, name string) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("name", name)

	var out Envelope
	if err := c.getJSON(ctx, deskService+"/FindColleague", q, &out); err != nil {
		return nil, fmt.Errorf("find colleague: %w", err)
	}
	return &out, nil
}

// ColleagueBookings returns a user's bookings within a date range.
func (c *Client) ColleagueBookings(ctx context.Context, start, end time.Time, timeZoneID string, userID int) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("startDate", FormatDate(start))
	q.Set("endDate", FormatDate(end))
	q.Set("timeZoneID", timeZoneID)
	q.Set("userId", strconv.Itoa(userID))

	var out Envelope
	if err := c.getJSON(ctx, deskService+"/UserBookings", q, &out); err != nil {
		return nil, fmt.Errorf("colleague bookings: %w", err)
	}
	return &out, nil
}

// AttendanceRecord returns a user's attendance between two dates.
func (c *Client) AttendanceRecord(ctx context.Context, start, end time.Time, userID int) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("startDate", FormatDate(start))
	q.Set("endDate", FormatDate(end))
	q.Set("UserId", strconv.Itoa(userID))

	var out Envelope
	if err := c.getJSON(ctx, deskService+"/GetAttendanceRecord", q, &out); err != nil {
		return nil, fmt.Errorf("attendance record: %w", err)
	}
	return &out, nil
}

// UpdateAttendanceRecord records where the user is working between two
// dates. The misspelled "attendenceType" parameter is the vendor's.
func (c *Client) UpdateAttendanceRecord(ctx context.Context, start, end time.Time, at AttendanceType, locationID int) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("startDate", FormatDate(start))
	q.Set("endDate", FormatDate(end))
	q.Set("attendenceType", strconv.Itoa(int(at)))
	q.Set("LocationId", strconv.Itoa(locationID))

	var out Envelope
	if err := c.getOnce(ctx, deskService+"/UpdateAttendanceRecord", q, &out); err != nil {
		return nil, fmt.Errorf("update attendance record: %w", err)
	}
	return &out, nil
}

// FloorPlan returns the floor plan for a floor.
func (c *Client) FloorPlan(ctx context.Context, locationID, groupID, floorID int) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("locationId", strconv.Itoa(locationID))
	q.Set("groupId", strconv.Itoa(groupID))
	q.Set("floorId", strconv.Itoa(floorID))

	var out Envelope
	if err := c.getJSON(ctx, deskService+"/floors/Floorplan", q, &out); err != nil {
		return nil, fmt.Errorf("floor plan: %w", err)
	}
	return &out, nil
}

// GroupSettingsWithRestrictions returns booking restrictions for a set
// of groups.
func (c *Client) GroupSettingsWithRestrictions(ctx context.Context, bookingForUserID, locationID int, groupIDs string) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("bookingForUserId", strconv.Itoa(bookingForUserID))
	q.Set("locationId", strconv.Itoa(locationID))
	q.Set("groupIds", groupIDs)

	var out Envelope
	if err := c.getJSON(ctx, deskService+"/groupSettingsWithRestrictions", q, &out); err != nil {
		return nil, fmt.Errorf("group settings with restrictions: %w", err)
	}
	return &out, nil
}

// SelfCertificationContent returns the self-certification text for a
// location.
func (c *Client) SelfCertificationContent(ctx context.Context, locationID int) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("locationID", strconv.Itoa(locationID))

	var out Envelope
	if err := c.getJSON(ctx, deskService+"/SelfCertificationContent", q, &out); err != nil {
		return nil, fmt.Errorf("self certification content: %w", err)
	}
	return &out, nil
}

// SelfCertificationStatus returns the user's self-certification status
// for a location.
func (c *Client) SelfCertificationStatus(ctx context.Context, locationID int) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("locationID", strconv.Itoa(locationID))

	var out Envelope
	if err := c.getJSON(ctx, deskService+"/SelfCertificationStatus", q, &out); err != nil {
		return nil, fmt.Errorf("self certification status: %w", err)
	}
	return &out, nil
}

// SelfCertifyUser submits a self-certification.
func (c *Client) SelfCertifyUser(ctx context.Context, req any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", deskService+"/SelfCertifyUser", req, &out); err != nil {
		return nil, fmt.Errorf("self certify user: %w", err)
	}
	return &out, nil
}

// SaveDefaultSettings stores the user's default country, location,
// group and floor.
func (c *Client) SaveDefaultSettings(ctx context.Context, countryID, locationID, groupID, floorID int) (*Envelope, error) {
	q := c.sessionQuery("accessToken")
	q.Set("countryID", strconv.Itoa(countryID))
	q.Set("locationID", strconv.Itoa(locationID))
	q.Set("groupID", strconv.Itoa(groupID))
	q.Set("floorID", strconv.Itoa(floorID))

	var out Envelope
	if err := c.getOnce(ctx, deskService+"/SaveDefaultSettings", q, &out); err != nil {
		return nil, fmt.Errorf("save default settings: %w", err)
	}
	return &out, nil
}

// DeskGlobalSettings returns the desk service's global settings. No
// authentication is required.
func (c *Client) DeskGlobalSettings(ctx context.Context) (*Envelope, error) {
	var out Envelope
	if err := c.getJSON(ctx, deskService+"/Configuration/GetGlobalSettings", nil, &out); err != nil {
		return nil, fmt.Errorf("desk global settings: %w", err)
	}
	return &out, nil
}

// DeskSystemInfo returns version information for the instance. No
// authentication is required.
func (c *Client) DeskSystemInfo(ctx context.Context) (*Envelope, error) {
	var out Envelope
	if err := c.getJSON(ctx, "/api/systeminfo", nil, &out); err != nil {
		return nil, fmt.Errorf("desk system info: %w", err)
	}
	return &out, nil
}

// getOnce issues a single non-retried GET for the desk service's
// mutating GET endpoints.
func (c *Client) getOnce(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return c.doOnce(ctx, "GET", endpoint, nil, out)
}
