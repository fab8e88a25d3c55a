package config

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.todo-cli/config.toml or OS-specific config dir)
// 3. Project config file (todo-cli.toml or .todo-cli.toml in the working directory)
// 4. Environment variables
// 5. CLI flags
//
// The flag set must already carry the global flags registered by
// RegisterFlags; Load parses args with it.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	userConfigFile := findUserConfigFile()
	if userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		cfg.ConfigFile = userConfigFile
	}

	// 3. Try to load from project config file (overrides user config)
	projectConfigFile := findProjectConfigFile()
	if projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		cfg.ConfigFile = projectConfigFile
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	flags := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	flags.Apply(cfg)

	// 6. Compute derived values
	finalizeConfig(cfg)

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// Flags holds pointers to the global flag values so they can be applied
// after parsing. Empty values mean "not set on the command line".
type Flags struct {
	File      *string
	Schema    *string
	LogLevel  *string
	LogFormat *string
}

// RegisterFlags registers the global flags on the flag set.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		File:      fs.String("file", "", "Store file path (default ~/.todo-cli.json)"),
		Schema:    fs.String("schema", "", "JSON Schema file path"),
		LogLevel:  fs.String("log-level", "", "Log level (debug|info|warn|error)"),
		LogFormat: fs.String("log-format", "", "Log format (text|json|logfmt)"),
	}
}

// Apply copies explicitly-set flag values onto the config.
func (f *Flags) Apply(cfg *Config) {
	if *f.File != "" {
		cfg.TodoFile = *f.File
	}
	if *f.Schema != "" {
		cfg.SchemaFile = *f.Schema
	}
	if *f.LogLevel != "" {
		cfg.LogLevel = *f.LogLevel
	}
	if *f.LogFormat != "" {
		cfg.LogFormat = *f.LogFormat
	}
}

// finalizeConfig expands ~ and environment variables in paths.
func finalizeConfig(cfg *Config) {
	cfg.TodoFile = expandPath(cfg.TodoFile)
	cfg.SchemaFile = expandPath(cfg.SchemaFile)
}
