// Package version contains the version of the condeco CLI.
package version

// Version is the semantic version, set at build time via
// -ldflags "-X .../internal/version.Version=...".
var Version = "0.1.0-dev"
