package version

// Set at build time with -ldflags "-X github.com/pandanite/pandascan/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
)
