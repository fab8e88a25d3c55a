package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkoval/todo-cli/internal/config"
	"github.com/mkoval/todo-cli/internal/todo"
)

// initCommand creates the store file, the JSON schema, and a starter user
// config. Existing files are left alone so init is safe to re-run.
func initCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo init", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// Store file
	if _, err := os.Stat(cfg.TodoFile); err == nil {
		fmt.Printf("Store file already exists: %s\n", cfg.TodoFile)
	} else if os.IsNotExist(err) {
		if err := todo.NewFile().Save(cfg.TodoFile); err != nil {
			return err
		}
		fmt.Printf("Created store file: %s\n", cfg.TodoFile)
	} else {
		return fmt.Errorf("stat store file: %w", err)
	}

	// Schema file
	if _, err := os.Stat(cfg.SchemaFile); err == nil {
		fmt.Printf("Schema file already exists: %s\n", cfg.SchemaFile)
	} else if os.IsNotExist(err) {
		if err := os.WriteFile(cfg.SchemaFile, []byte(todo.SchemaJSON), 0644); err != nil {
			return fmt.Errorf("write schema file: %w", err)
		}
		fmt.Printf("Created schema file: %s\n", cfg.SchemaFile)
	} else {
		return fmt.Errorf("stat schema file: %w", err)
	}

	// User config file
	configPath := userConfigPath()
	if configPath == "" {
		return nil
	}
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file already exists: %s\n", configPath)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	fmt.Printf("Created config file: %s\n", configPath)
	return nil
}

// userConfigPath returns where init should place the starter config.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".todo-cli", "config.toml")
}
