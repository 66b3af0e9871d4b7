// Package version exposes the build version of usertable.
package version

// version is set at build time with
// -ldflags "-X github.com/rshade/usertable/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Set via ldflags.

// GetVersion returns the build version, or "dev" for local builds.
func GetVersion() string {
	return version
}
