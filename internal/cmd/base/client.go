package base

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/matthew1471/condeco-go/internal/config"
	"github.com/matthew1471/condeco-go/pkg/condeco"
)

// LoadClient loads the configuration file and builds a client carrying
// whatever credentials are on file. Commands that need a completed
// handshake check cfg.Authentication.State() themselves.
func (c *Command) LoadClient(configPath string) (*config.Store, *config.Config, *condeco.Client, error) {
	store := config.NewStore(configPath)
	cfg, err := store.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := condeco.New(condeco.Config{
		UniqueKey:    cfg.Authentication.UniqueKey,
		AccessToken:  cfg.Authentication.Token,
		SessionToken: cfg.Authentication.SessionToken,
		Logger:       c.Log,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return store, cfg, client, nil
}

// RequireAuthenticated fails unless the handshake has completed.
func (c *Command) RequireAuthenticated(cfg *config.Config) error {
	if cfg.Authentication.State() != config.StateAuthenticated {
		return fmt.Errorf("not authenticated (%s): run 'condeco login' first",
			cfg.Authentication.State())
	}
	return nil
}

// ParseDate parses a user-supplied date flag. Day-first formats win on
// ambiguity to match the dd/MM/yyyy convention the API itself uses.
func ParseDate(s string) (time.Time, error) {
	t, err := dateparse.ParseAny(s, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", s, err)
	}
	return t, nil
}
