package config

// Log configures the process logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[oilfield]"`
}

// Color modes for Report.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Report configures console output of deposits.
type Report struct {
	Color string `envconfig:"COLOR" default:"auto"`
	JSON  bool   `envconfig:"JSON" default:"false"`
}

type App struct {
	Env    string  `envconfig:"APP_ENV" default:"development"`
	Log    *Log    `envconfig:"LOG"`
	Report *Report `envconfig:"REPORT"`
}
