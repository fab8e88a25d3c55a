// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.todo-cli/config.toml or OS-specific config directory)
// 3. Project config file (todo-cli.toml or .todo-cli.toml in the working directory)
// 4. Environment variables (TODO_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.todo-cli/config.toml (preferred)
// - Windows: %APPDATA%\todo-cli\config.toml
// - macOS: ~/Library/Application Support/todo-cli/config.toml
// - Linux/BSD: $XDG_CONFIG_HOME/todo-cli/config.toml or ~/.config/todo-cli/config.toml
//
// Project-level config locations (overrides user config):
// - ./todo-cli.toml (preferred)
// - ./.todo-cli.toml
package config
