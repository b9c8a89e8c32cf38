package config

type (
	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App      App
	Schedule Schedule
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeout           int
	MaxTimeRequestsPerSeconds int
}

// Schedule configures the upstream timetable service and the parsing
// policy values.
type Schedule struct {
	UpstreamBaseUrl           string
	UpstreamReferer           string
	UpstreamUserAgent         string
	UpstreamTimeoutInSeconds  int
	UpstreamRequestsPerSecond int
	RemoteLocationMarker      string
}
