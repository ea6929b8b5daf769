package condeco

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// LoginResponse is returned by LoginWithMagicLink.
type LoginResponse struct {
	CallResponse CallResponse `json:"CallResponse"`
	Token        string       `json:"token"`
}

// SessionTokenResponse is returned by the session token endpoints.
type SessionTokenResponse struct {
	CallResponse CallResponse `json:"CallResponse"`
	SessionToken string       `json:"sessionToken"`
}

// UserAuthentication is the device credential payload for the desk
// panel authentication flow.
type UserAuthentication struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	DeviceID string `json:"deviceID,omitempty"`
}

// LoginInformationRequest parameterizes LoginInformation.
type LoginInformationRequest struct {
	LanguageID      int
	CurrentDateTime string
	CurrentCulture  string
}

// SendMagicLink starts the passwordless handshake: the vendor emails a
// one-time validation key to the given address.
func (c *Client) SendMagicLink(ctx context.Context, email string) (*Envelope, error) {
	var out Envelope
	body := map[string]string{"email": email}
	if err := c.sendJSON(ctx, "POST", "/MobileAPI/MobileService.svc/User/SendMagicLink", body, &out); err != nil {
		return nil, fmt.Errorf("send magic link: %w", err)
	}
	return &out, nil
}

// LoginWithMagicLink exchanges the emailed validation key for a JWT
// access token. On success the token is installed on the client.
func (c *Client) LoginWithMagicLink(ctx context.Context, validationKey string) (*LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"validationKey": validationKey}
	if err := c.sendJSON(ctx, "POST", "/MobileAPI/MobileService.svc/User/LoginWithMagicLink", body, &out); err != nil {
		return nil, fmt.Errorf("login with magic link: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	if out.Token != "" {
		c.SetAccessToken(out.Token)
	}
	return &out, nil
}

// GetSessionToken fetches the opaque session token for the
// authenticated user. On success the token is installed on the client.
func (c *Client) GetSessionToken(ctx context.Context) (*SessionTokenResponse, error) {
	var out SessionTokenResponse
	if err := c.getJSON(ctx, "/mobileapi/MobileService.svc/User/GetSessionToken", nil, &out); err != nil {
		return nil, fmt.Errorf("get session token: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	if out.SessionToken != "" {
		c.SetSessionToken(out.SessionToken)
	}
	return &out, nil
}

// GetSessionTokenV2 is the newer session token endpoint. currentCulture
// may be empty.
func (c *Client) GetSessionTokenV2(ctx context.Context, currentCulture string) (*SessionTokenResponse, error) {
	q := url.Values{}
	if currentCulture != "" {
		q.Set("currentCulture", currentCulture)
	}
	var out SessionTokenResponse
	if err := c.getJSON(ctx, "/mobileapi/MobileService.svc/User/GetSessionTokenV2", q, &out); err != nil {
		return nil, fmt.Errorf("get session token v2: %w", err)
	}
	if err := checkCall(out.CallResponse); err != nil {
		return nil, err
	}
	if out.SessionToken != "" {
		c.SetSessionToken(out.SessionToken)
	}
	return &out, nil
}

// AuthenticateUserSecure is the authentication flow used by desk
// panels rather than the mobile application.
func (c *Client) AuthenticateUserSecure(ctx context.Context, auth UserAuthentication) (*Envelope, error) {
	var out Envelope
	if err := c.sendJSON(ctx, "POST", "/LoginAPI/auth/authenticateusersecure", auth, &out); err != nil {
		return nil, fmt.Errorf("authenticate user secure: %w", err)
	}
	return &out, nil
}

// LoginInformation returns the per-user settings bundle the mobile
// application loads after login.
func (c *Client) LoginInformation(ctx context.Context, req LoginInformationRequest) (*Envelope, error) {
	q := c.sessionQuery("token")
	q.Set("languageId", strconv.Itoa(req.LanguageID))
	q.Set("currentDateTime", req.CurrentDateTime)
	q.Set("currentCulture", req.CurrentCulture)

	var out Envelope
	if err := c.getJSON(ctx, "/MobileAPI/MobileService.svc/User/LoginInformationsV2", q, &out); err != nil {
		return nil, fmt.Errorf("login information: %w", err)
	}
	return &out, nil
}
