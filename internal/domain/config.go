package domain

// Config represents the application configuration.
type Config struct {
	UI    UIConfig    `toml:"ui"`
	Tasks TasksConfig `toml:"tasks"`
	Log   LogConfig   `toml:"log"`
}

// UIConfig holds display settings from the [ui] section.
type UIConfig struct {
	AccentColor string `toml:"accent_color,omitempty"` // Hex color for the TUI accent (default: "#6C5CE7")
	TimeFormat  string `toml:"time_format,omitempty"`  // Go layout for created timestamps (default: "Jan 02, 2006 15:04")
}

// TasksConfig holds task settings from the [tasks] section.
type TasksConfig struct {
	DefaultPriority string `toml:"default_priority,omitempty"` // Priority used when input is invalid (default: "medium")
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error (default: "warn")
}

// DefaultTimeFormat is the layout used for created timestamps.
const DefaultTimeFormat = "Jan 02, 2006 15:04"

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			AccentColor: "#6C5CE7",
			TimeFormat:  DefaultTimeFormat,
		},
		Tasks: TasksConfig{
			DefaultPriority: string(PriorityMedium),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultPriority returns the configured default priority, falling back
// to medium when the configured value is not valid.
func (c *Config) DefaultPriority() Priority {
	p := Priority(c.Tasks.DefaultPriority)
	if !p.IsValid() {
		return PriorityMedium
	}
	return p
}
