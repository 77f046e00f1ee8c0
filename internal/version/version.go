// Package version records the application version.
package version

// Version is the application version, overridable at build time with
// -ldflags "-X pokedex-api/internal/version.Version=v1.2.3".
var Version = "v1.0.0"
