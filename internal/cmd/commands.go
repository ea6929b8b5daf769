package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/matthew1471/condeco-go/internal/cmd/base"
	"github.com/matthew1471/condeco-go/internal/cmd/commands/autobook"
	"github.com/matthew1471/condeco-go/internal/cmd/commands/book"
	"github.com/matthew1471/condeco-go/internal/cmd/commands/bookings"
	"github.com/matthew1471/condeco-go/internal/cmd/commands/cancel"
	"github.com/matthew1471/condeco-go/internal/cmd/commands/checkin"
	"github.com/matthew1471/condeco-go/internal/cmd/commands/colleagues"
	"github.com/matthew1471/condeco-go/internal/cmd/commands/login"
	"github.com/matthew1471/condeco-go/internal/cmd/commands/release"
	"github.com/matthew1471/condeco-go/internal/cmd/commands/search"
	versioncmd "github.com/matthew1471/condeco-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(ui, log)

	Commands = map[string]cli.CommandFactory{
		"login": func() (cli.Command, error) {
			return &login.Command{Command: b}, nil
		},
		"autobook": func() (cli.Command, error) {
			return &autobook.Command{Command: b}, nil
		},
		"search": func() (cli.Command, error) {
			return &search.Command{Command: b}, nil
		},
		"book": func() (cli.Command, error) {
			return &book.Command{Command: b}, nil
		},
		"bookings": func() (cli.Command, error) {
			return &bookings.Command{Command: b}, nil
		},
		"cancel": func() (cli.Command, error) {
			return &cancel.Command{Command: b}, nil
		},
		"checkin": func() (cli.Command, error) {
			return &checkin.Command{Command: b}, nil
		},
		"release": func() (cli.Command, error) {
			return &release.Command{Command: b}, nil
		},
		"colleagues": func() (cli.Command, error) {
			return &colleagues.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
	}
}
