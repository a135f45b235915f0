package helmalign

var (
	// Version is set by build flags.
	Version = "dev"
	// Build is set by build flags.
	Build = "n/a"
)
