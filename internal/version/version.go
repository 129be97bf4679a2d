package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/agentup/agentup/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/agentup/agentup/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/agentup/agentup/internal/version.Date={{.Date}}
)
