package config

const (
	EnvPrefix = "SITTA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv             = "SITTA_APP_ENV"
	EnvPort               = "SITTA_APP_PORT"
	EnvLogLevel           = "SITTA_LOG_LEVEL"
	EnvLogWarnStack       = "SITTA_LOG_WARN_STACK"
	EnvCORSAllowedOrigins = "SITTA_CORS_ALLOWED_ORIGINS"
	EnvFixturesPath       = "SITTA_FIXTURES_PATH"
	EnvDateLocale         = "SITTA_DATE_LOCALE"
	EnvThousandsSeparator = "SITTA_THOUSANDS_SEPARATOR"
	EnvCollation          = "SITTA_COLLATION"
	EnvMetricsEnabled     = "SITTA_METRICS_ENABLED"
)
