// Package base carries the plumbing shared by all CLI commands: the
// UI, the logger, and flag set helpers.
package base

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by every command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger
}

// NewCommand creates the shared command base.
func NewCommand(ui cli.Ui, log hclog.Logger) *Command {
	return &Command{UI: ui, Log: log}
}

// FlagSet wraps flag.FlagSet with help rendering.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps a flag set.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help renders the flag block appended to each command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "  -%s\n", fl.Name)
		usage := fl.Usage
		if fl.DefValue != "" {
			usage += fmt.Sprintf(" (default: %s)", fl.DefValue)
		}
		for _, line := range strings.Split(wrap(usage, 70), "\n") {
			fmt.Fprintf(&b, "      %s\n", line)
		}
	})
	return b.String()
}

// wrap breaks s into lines no longer than width.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
