package app

// Build metadata, injected with
// -ldflags "-X github.com/heartmarshall/telemetry-backend/internal/app.Version=1.2.0 -X ...app.Commit=abc1234".
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion reports Version, suffixed with "+<commit>" when the commit is known.
// The value is logged at startup and returned by /live.
func BuildVersion() string {
	if Commit == "" {
		return Version
	}
	return Version + "+" + Commit
}
