package config

// Log configures the process logger. Level follows charmbracelet/log:
// -4 debug, 0 info, 4 warn, 8 error.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[banking]"`
}

// Registry bounds the number of accounts held in memory. Zero means unbounded.
type Registry struct {
	MaxAccounts int `envconfig:"MAX_ACCOUNTS" default:"10" validate:"gte=0"`
}

// Color modes for CLI.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type CLI struct {
	Color  string `envconfig:"COLOR" default:"auto" validate:"oneof=auto always never"`
	Prompt string `envconfig:"PROMPT" default:"Enter your choice: "`
}

type App struct {
	Env      string    `envconfig:"APP_ENV" default:"development"`
	Log      *Log      `envconfig:"LOG"`
	Registry *Registry `envconfig:"REGISTRY"`
	CLI      *CLI      `envconfig:"CLI"`
}
