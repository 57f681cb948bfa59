package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHeatDBType string = "HEAT_DB_TYPE"
	EnvKeyHeatDBPath string = "HEAT_DB_PATH"

	EnvKeyHeatHTTPHostPort string = "HEAT_HTTP_HOST_PORT"

	EnvKeyHeatOpenWeatherKey     string = "HEAT_OPENWEATHER_KEY"
	EnvKeyHeatOpenWeatherBaseURL string = "HEAT_OPENWEATHER_BASE_URL"
	EnvKeyHeatCity               string = "HEAT_CITY"

	EnvKeyHeatAlertInterval  string = "HEAT_ALERT_INTERVAL"
	EnvKeyHeatWeatherTimeout string = "HEAT_WEATHER_TIMEOUT"

	EnvKeyHeatDefaultRate  string = "HEAT_DEFAULT_RATE"
	EnvKeyHeatDefaultBurst string = "HEAT_DEFAULT_BURST"

	EnvKeyHeatAdminToken string = "HEAT_ADMIN_TOKEN"

	LoggerNameHeatCore      string = "heat_core"
	LoggerNameScheduler     string = "alert_scheduler"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldHeatCategory  string = "category"
	LoggerCategoryHeatAlert  string = "alert"
	LoggerCategoryHeatNotify string = "notification"
	LoggerCategoryHeatReport string = "report"
	LoggerCategoryWeather    string = "weather"
	LoggerCategoryScheduler  string = "scheduler"
)
