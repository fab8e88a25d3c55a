package config

// Default values.
const (
	DefaultTodoFile   = "~/.todo-cli.json"
	DefaultSchemaFile = "~/.todo-cli.schema.json"
	DefaultFilter     = "pending"
	DefaultPriority   = "medium"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
)

// Config holds the full configuration for todo-cli.
type Config struct {
	// Paths
	TodoFile   string `toml:"todo_file"`
	SchemaFile string `toml:"schema_file"`

	// Command defaults
	DefaultFilter   string `toml:"default_filter"`
	DefaultPriority string `toml:"default_priority"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// ConfigFile is the config file that was actually loaded (computed).
	ConfigFile string `toml:"-"`
}
