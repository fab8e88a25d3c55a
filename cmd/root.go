// Package cmd implements the CLI command structure for todo-cli.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mkoval/todo-cli/internal/config"
	"github.com/mkoval/todo-cli/internal/logging"
	"github.com/mkoval/todo-cli/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todo-cli CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.New(cfg)

	// Determine the subcommand
	// If no args remain, default to "list"
	subcommand := "list"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	logger.Debug("dispatching", "command", subcommand, "store", cfg.TodoFile)

	// Execute the subcommand
	switch subcommand {
	case "add":
		return addCommand(cfg, logger, remainingArgs)
	case "list", "ls":
		return listCommand(cfg, logger, remainingArgs)
	case "done":
		return doneCommand(cfg, logger, remainingArgs)
	case "remove", "rm":
		return removeCommand(cfg, logger, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "init":
		return initCommand(cfg, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand launches the store viewer.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return ui.RunTUI(ctx, cfg.TodoFile)
}

func versionCommand() error {
	fmt.Printf("todo-cli %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `todo - a personal task tracker

Usage:
  todo [global flags] <command> [args]

Commands:
  add <title...> [--priority high|medium|low] [--due YYYY-MM-DD]
                        Add a new todo
  list [--filter pending|done|all]
                        List todos (default command)
  done <id>             Mark a todo as done
  remove <id>           Remove a todo (alias: rm)
  tui                   Open the interactive viewer
  init                  Create the store, schema, and a starter config
  doctor                Check store, schema, and config health
  version               Show version
  help                  Show this help

Global flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  todo add "Buy milk" --priority low
  todo add "Pay bills" --priority high --due 2026-09-01
  todo list --filter all
  todo done 1
  todo remove 2

Configuration is read from ~/.todo-cli/config.toml (or the OS config
directory), a project-local todo-cli.toml, TODO_* environment variables,
and the global flags above, in that order.
`)
}

// parseMixed parses flags that may appear before or after positional args,
// so `todo add Buy milk --priority high` works without reordering.
func parseMixed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// First remaining token is positional; keep scanning for flags after it.
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func joinTitle(parts []string) string {
	return strings.TrimSpace(strings.Join(parts, " "))
}
