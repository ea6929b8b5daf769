package condeco

import (
	"context"
	"fmt"
)

// Room operations live under MobileService.svc/RoomBookings. The mobile
// application builds rich request documents for these; their shapes are
// tenant-configurable, so requests are accepted as any and responses
// come back as envelopes with the raw payload attached.
const roomBookings = "/MobileAPI/MobileService.svc/RoomBookings"

// CreateRoomBooking books a room.
func (c *Client) CreateRoomBooking(ctx context.Context, addBooking any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "PUT", roomBookings+"/Add", addBooking, &out); err != nil {
		return nil, fmt.Errorf("create room booking: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoomBooking modifies an existing room booking.
func (c *Client) UpdateRoomBooking(ctx context.Context, updateBooking any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "PUT", roomBookings+"/Update", updateBooking, &out); err != nil {
		return nil, fmt.Errorf("update room booking: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelRoomBooking cancels a room booking. The endpoint lives under
// the lowercase "mobileapi" path on real instances.
func (c *Client) CancelRoomBooking(ctx context.Context, deleteBooking any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", "/mobileapi/MobileService.svc/RoomBookings/DeleteRoomBookingWithBody", deleteBooking, &out); err != nil {
		return nil, fmt.Errorf("cancel room booking: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartRoomBooking marks a room booking as started.
func (c *Client) StartRoomBooking(ctx context.Context, startBooking any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "PUT", roomBookings+"/Start", startBooking, &out); err != nil {
		return nil, fmt.Errorf("start room booking: %w", err)
	}
	return &out, nil
}

// EndRoomBooking ends a room booking early.
func (c *Client) EndRoomBooking(ctx context.Context, endBooking any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "PUT", roomBookings+"/End", endBooking, &out); err != nil {
		return nil, fmt.Errorf("end room booking: %w", err)
	}
	return &out, nil
}

// ExtendRoomBooking extends a running room booking.
func (c *Client) ExtendRoomBooking(ctx context.Context, extendBooking any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "PUT", roomBookings+"/Extend", extendBooking, &out); err != nil {
		return nil, fmt.Errorf("extend room booking: %w", err)
	}
	return &out, nil
}

// RoomAvailability returns availability for the rooms in a request.
func (c *Client) RoomAvailability(ctx context.Context, roomRequest any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", roomBookings+"/RoomAvailability", roomRequest, &out); err != nil {
		return nil, fmt.Errorf("room availability: %w", err)
	}
	return &out, nil
}

// RoomInfo returns detail for the rooms in a request.
func (c *Client) RoomInfo(ctx context.Context, roomRequest any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", roomBookings+"/RoomInfo", roomRequest, &out); err != nil {
		return nil, fmt.Errorf("room info: %w", err)
	}
	return &out, nil
}

// SearchRooms searches for rooms matching the given criteria.
func (c *Client) SearchRooms(ctx context.Context, criteria any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", "/mobileapi/MobileService.svc/RoomBookings/RoomSearch", criteria, &out); err != nil {
		return nil, fmt.Errorf("search rooms: %w", err)
	}
	return &out, nil
}

// SearchRoomsByFeatures searches for rooms with specific features.
func (c *Client) SearchRoomsByFeatures(ctx context.Context, req any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", roomBookings+"/RoomSearchByFeatures", req, &out); err != nil {
		return nil, fmt.Errorf("search rooms by features: %w", err)
	}
	return &out, nil
}

// SearchAllByRoomFeatures searches every location for rooms with
// specific features.
func (c *Client) SearchAllByRoomFeatures(ctx context.Context, req any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", roomBookings+"/SearchAllByRoomFeatures", req, &out); err != nil {
		return nil, fmt.Errorf("search all by room features: %w", err)
	}
	return &out, nil
}
