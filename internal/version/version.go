// Package version reports the build version of the replay companion.
// Set it at build time with:
//
//	go build -ldflags "-X github.com/ramonehamilton/replay-companion/internal/version.Version=v0.3.0 -X github.com/ramonehamilton/replay-companion/internal/version.Commit=abc123"
package version

// Version and Commit are overridden at build time.
var (
	Version = "dev"
	Commit  = ""
)

// String returns the version with the short commit appended when known.
func String() string {
	if Commit == "" {
		return Version
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return Version + " (" + short + ")"
}
