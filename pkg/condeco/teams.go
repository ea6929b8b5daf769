package condeco

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Team endpoints authenticate with the bearer token alone; no session
// token travels in the query.
const teamService = "/MobileAPI/MobileService.svc/team"

// MyTeams returns the teams a user belongs to.
func (c *Client) MyTeams(ctx context.Context, userLongID int64) (*Envelope, error) {
	q := url.Values{}
	q.Set("userlongId", strconv.FormatInt(userLongID, 10))

	var out Envelope
	if err := c.getJSON(ctx, teamService+"/GetMyTeams", q, &out); err != nil {
		return nil, fmt.Errorf("my teams: %w", err)
	}
	return &out, nil
}

// ReservedDeskStatus returns the reserved desk status for a team day.
func (c *Client) ReservedDeskStatus(ctx context.Context, userLongID int64, teamDayID int) (*Envelope, error) {
	q := url.Values{}
	q.Set("userlongId", strconv.FormatInt(userLongID, 10))
	q.Set("teamDayId", strconv.Itoa(teamDayID))

	var out Envelope
	if err := c.getJSON(ctx, teamService+"/GetReservedDeskStatus", q, &out); err != nil {
		return nil, fmt.Errorf("reserved desk status: %w", err)
	}
	return &out, nil
}

// CreateMyTeamDay invites the team to the office for a day.
func (c *Client) CreateMyTeamDay(ctx context.Context, req any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", teamService+"/CreateMyTeamDay", req, &out); err != nil {
		return nil, fmt.Errorf("create team day: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelTeamDay cancels a team day.
func (c *Client) CancelTeamDay(ctx context.Context, req any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", teamService+"/CancelTeamDay", req, &out); err != nil {
		return nil, fmt.Errorf("cancel team day: %w", err)
	}
	return &out, nil
}

// TeamDayAcceptDecline responds to a team day invitation.
func (c *Client) TeamDayAcceptDecline(ctx context.Context, req any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", teamService+"/TeamDayAcceptDecline", req, &out); err != nil {
		return nil, fmt.Errorf("team day accept decline: %w", err)
	}
	return &out, nil
}

// TeamMemberOperation adds or removes team members.
func (c *Client) TeamMemberOperation(ctx context.Context, req any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", teamService+"/TeamMemberOperation", req, &out); err != nil {
		return nil, fmt.Errorf("team member operation: %w", err)
	}
	return &out, nil
}

// BookReservedTeamDayDesk books the desk reserved for the user on a
// team day.
func (c *Client) BookReservedTeamDayDesk(ctx context.Context, req any) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", teamService+"/BookReservedTeamDayDesk", req, &out); err != nil {
		return nil, fmt.Errorf("book reserved team day desk: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	return &out, nil
}
