package cli

// Flag constants for market CLI commands
const (
	// Resource spec flags
	FlagGpuCount = "gpu-count"
	FlagCpuCores = "cpu-cores"
	FlagMemoryGb = "memory-gb"

	// Listing flags
	FlagHourlyRate = "hourly-rate"

	// Auction flags
	FlagMaxDuration   = "max-duration"
	FlagStartingPrice = "starting-price"
	FlagActiveOnly    = "active"

	// Job filter flags
	FlagProvider  = "provider"
	FlagRequester = "requester"
)
