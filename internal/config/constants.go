package config

// Environment variable names
const (
	EnvEnvironment       = "ENVIRONMENT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogFile           = "LOG_FILE"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvHistoryFile       = "HISTORY_FILE"
	EnvCurrency          = "CURRENCY"
	EnvTickIntervalMS    = "TICK_INTERVAL_MS"
	EnvDefaultBalance    = "DEFAULT_BALANCE"
	EnvMinInitialBalance = "MIN_INITIAL_BALANCE"
	EnvMaxInitialBalance = "MAX_INITIAL_BALANCE"
	EnvInitialBalance    = "INITIAL_BALANCE"
	EnvStatusAddr        = "STATUS_ADDR"
	EnvNoColor           = "NO_COLOR"
)

// Defaults
const (
	DefaultEnvironment       = "dev"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "wheelbet"
	DefaultVersion           = "dev"
	DefaultHistoryFile       = "wheel_history.txt"
	DefaultCurrency          = "MGA"
	DefaultTickIntervalMS    = 40
	DefaultBalance           = 10000
	DefaultMinInitialBalance = 1000
	DefaultMaxInitialBalance = 1_000_000_000_000
)
