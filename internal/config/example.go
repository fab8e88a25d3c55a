package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todo-cli configuration file
# Values can be overridden by environment variables (TODO_*) or CLI flags

# Store file (supports ~ expansion)
todo_file = "~/.todo-cli.json"

# JSON Schema used by doctor and validation (supports ~ expansion)
schema_file = "~/.todo-cli.schema.json"

# Default filter for the list command: pending, done, or all
default_filter = "pending"

# Default priority for new todos: high, medium, or low
default_priority = "medium"

# Logging
log_level = "warn"
log_format = "text"
# log_timestamps = true
# log_caller = true
`
}
