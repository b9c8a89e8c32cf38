package config

import (
	"github.com/joho/godotenv"

	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
		},
		Schedule: Schedule{
			UpstreamBaseUrl:           utils.GetEnvString("SCHEDULE_UPSTREAM_BASE_URL", "https://rasp.dmami.ru"),
			UpstreamReferer:           utils.GetEnvString("SCHEDULE_UPSTREAM_REFERER", "https://rasp.dmami.ru/"),
			UpstreamUserAgent:         utils.GetEnvString("SCHEDULE_UPSTREAM_USER_AGENT", "MospolyRasp/1.0"),
			UpstreamTimeoutInSeconds:  utils.GetEnvInt("SCHEDULE_UPSTREAM_TIMEOUT_IN_SECONDS", 8),
			UpstreamRequestsPerSecond: utils.GetEnvInt("SCHEDULE_UPSTREAM_REQUESTS_PER_SECOND", 5),
			RemoteLocationMarker:      utils.GetEnvString("SCHEDULE_REMOTE_LOCATION_MARKER", constvars.DefaultRemoteLocationMarker),
		},
	}
}
