// Package config loads and persists the flat JSON configuration file
// shared with the other Hybrid-Worker tools. The authentication block
// is mutated in place as the magic-link handshake progresses: first the
// email alone, then the emailed validation key, finally the bearer
// token and session token.
package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// AuthState is the next step of the magic-link handshake implied by the
// credentials currently on file.
type AuthState int

const (
	// StateNeedMagicLink: no credentials at all; request a validation
	// key by email.
	StateNeedMagicLink AuthState = iota

	// StateNeedExchange: a validation key is on file; exchange it for
	// tokens.
	StateNeedExchange

	// StateAuthenticated: a bearer token is on file.
	StateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateNeedExchange:
		return "validation key pending exchange"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "magic link not yet requested"
	}
}

// Config is the configuration document.
type Config struct {
	Authentication Authentication `json:"authentication"`
	AutoBook       AutoBook       `json:"auto_book"`
	Examples       Examples       `json:"examples"`
}

// Authentication carries the handshake credentials. unique_key is the
// tenant hostname; validation_key is the one-time code from the
// magic-link email; token and sessionToken are the bearer credentials
// issued once the key is exchanged.
type Authentication struct {
	Email         string `json:"email"`
	UniqueKey     string `json:"unique_key"`
	ValidationKey string `json:"validation_key,omitempty"`
	SessionToken  string `json:"sessionToken,omitempty"`
	Token         string `json:"token,omitempty"`
}

// State reports which handshake step comes next.
func (a Authentication) State() AuthState {
	switch {
	case a.Token != "":
		return StateAuthenticated
	case a.ValidationKey != "":
		return StateNeedExchange
	default:
		return StateNeedMagicLink
	}
}

// AutoBook holds the fixed parameters the weekly auto-booker searches
// and books with.
type AutoBook struct {
	LocationID int `json:"location_id"`
	GroupID    int `json:"group_id"`
	FloorID    int `json:"floor_id"`
	UserID     int `json:"user_id"`
	WSTypeID   int `json:"ws_type_id"`
}

// Examples holds the identifiers the example commands operate on.
type Examples struct {
	BookingID   int    `json:"booking_id,omitempty"`
	DeskID      int    `json:"desk_id,omitempty"`
	FloorID     int    `json:"floor_id,omitempty"`
	GroupID     int    `json:"group_id,omitempty"`
	LocationID  int    `json:"location_id,omitempty"`
	Name        string `json:"name,omitempty"`
	UserID      int    `json:"user_id,omitempty"`
	UserIDOther int    `json:"user_id_other,omitempty"`
	WSTypeID    int    `json:"ws_type_id,omitempty"`
}

// Validate checks the document is usable for the handshake state it is
// in. The session token, when present, is the GUID the ListV2 endpoint
// calls sessionGuid.
func (c *Config) Validate() error {
	a := c.Authentication

	err := validation.ValidateStruct(&a,
		validation.Field(&a.UniqueKey, validation.Required, is.Host),
		validation.Field(&a.Email,
			validation.Required.When(a.Token == "" && a.ValidationKey == ""),
			is.EmailFormat),
	)
	if err != nil {
		return fmt.Errorf("authentication: %w", err)
	}

	if a.SessionToken != "" {
		if _, err := uuid.Parse(a.SessionToken); err != nil {
			return fmt.Errorf("authentication: sessionToken is not a GUID: %w", err)
		}
	}
	return nil
}
