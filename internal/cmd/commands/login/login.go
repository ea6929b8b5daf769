// Package login drives the passwordless authentication handshake. It
// is stateful across invocations: each run performs the next handshake
// step implied by the configuration file and persists the result, so
// the user runs it once to receive the magic-link email, pastes the
// validation key into the configuration (or passes -validation-key),
// and runs it again to obtain the tokens.
package login

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/matthew1471/condeco-go/internal/cmd/base"
	"github.com/matthew1471/condeco-go/internal/config"
	"github.com/matthew1471/condeco-go/pkg/condeco"
)

type Command struct {
	*base.Command

	flagConfig        string
	flagEmail         string
	flagValidationKey string
}

func (c *Command) Synopsis() string {
	return "Perform the next step of the magic-link authentication handshake"
}

func (c *Command) Help() string {
	return `Usage: condeco login

  Performs the next step of the passwordless handshake based on the
  credentials in the configuration file:

    - no credentials:        emails the user a validation key
    - validation key on file: exchanges it for an access token and a
      session token, and persists both
    - token on file:          refreshes the session token, or restarts
      the handshake if the token has expired
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("login", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", config.DefaultPath,
		"Path to the configuration file",
	)
	f.StringVar(
		&c.flagEmail, "email", "",
		"E-mail address to authenticate; overrides the configuration file",
	)
	f.StringVar(
		&c.flagValidationKey, "validation-key", "",
		"Validation key from the magic-link e-mail; overrides the configuration file",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	// Flags overlay the document before validation, so a file carrying
	// only the unique_key is usable with -email.
	store := config.NewStore(c.flagConfig)
	cfg, err := store.LoadRaw()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if c.flagEmail != "" {
		cfg.Authentication.Email = c.flagEmail
	}
	if c.flagValidationKey != "" {
		cfg.Authentication.ValidationKey = c.flagValidationKey
	}

	if err := cfg.Validate(); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	client, err := condeco.New(condeco.Config{
		UniqueKey:    cfg.Authentication.UniqueKey,
		AccessToken:  cfg.Authentication.Token,
		SessionToken: cfg.Authentication.SessionToken,
		Logger:       c.Log,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()

	switch cfg.Authentication.State() {
	case config.StateNeedMagicLink:
		return c.sendMagicLink(ctx, client, cfg)
	case config.StateNeedExchange:
		return c.exchange(ctx, client, store, cfg)
	default:
		return c.refresh(ctx, client, store, cfg)
	}
}

func (c *Command) sendMagicLink(ctx context.Context, client *condeco.Client, cfg *config.Config) int {
	if _, err := client.SendMagicLink(ctx, cfg.Authentication.Email); err != nil {
		c.UI.Error(fmt.Sprintf("failed to request magic link: %v", err))
		return 1
	}
	c.UI.Info(fmt.Sprintf("Validation key sent to %s.", cfg.Authentication.Email))
	c.UI.Info("Add it to the configuration as authentication.validation_key (or pass -validation-key) and run 'condeco login' again.")
	return 0
}

func (c *Command) exchange(ctx context.Context, client *condeco.Client, store *config.Store, cfg *config.Config) int {
	login, err := client.LoginWithMagicLink(ctx, cfg.Authentication.ValidationKey)
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to exchange validation key: %v", err))
		return 1
	}

	// The validation key is single use; drop it now that it is spent.
	cfg.Authentication.Token = login.Token
	cfg.Authentication.ValidationKey = ""
	if err := store.Save(cfg); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Info("✓ Access token obtained")

	session, err := client.GetSessionToken(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to obtain session token: %v", err))
		return 1
	}

	cfg.Authentication.SessionToken = session.SessionToken
	if err := store.Save(cfg); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Info("✓ Session token obtained; handshake complete")
	return 0
}

func (c *Command) refresh(ctx context.Context, client *condeco.Client, store *config.Store, cfg *config.Config) int {
	if condeco.TokenExpired(cfg.Authentication.Token, time.Now()) {
		c.UI.Warn("Access token has expired; restarting handshake.")
		cfg.Authentication.Token = ""
		cfg.Authentication.SessionToken = ""
		if err := store.Save(cfg); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		return c.sendMagicLink(ctx, client, cfg)
	}

	if exp, err := condeco.TokenExpiry(cfg.Authentication.Token); err == nil {
		c.UI.Info(fmt.Sprintf("Access token valid until %s.", exp.Format(time.RFC1123)))
	}

	session, err := client.GetSessionToken(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to refresh session token: %v", err))
		return 1
	}
	cfg.Authentication.SessionToken = session.SessionToken
	if err := store.Save(cfg); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Info("✓ Session token refreshed")
	return 0
}
