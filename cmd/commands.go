package cmd

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/mkoval/todo-cli/internal/config"
	"github.com/mkoval/todo-cli/internal/todo"
	"github.com/mkoval/todo-cli/internal/ui"
)

// Each command is one load-mutate-save cycle over the store file.

// addCommand appends a new todo and saves the store.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("todo add", flag.ContinueOnError)
	priorityArg := fs.String("priority", cfg.DefaultPriority, "Priority (high|medium|low)")
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")

	positional, err := parseMixed(fs, args)
	if err != nil {
		return err
	}
	title := joinTitle(positional)
	if title == "" {
		return fmt.Errorf("usage: todo add <title...> [--priority high|medium|low] [--due YYYY-MM-DD]")
	}

	priority, err := todo.ParsePriority(*priorityArg)
	if err != nil {
		return err
	}

	f, err := todo.Load(cfg.TodoFile)
	if err != nil {
		return err
	}
	logger.Debug("loaded store", "path", cfg.TodoFile, "tasks", len(f.Tasks))

	task, err := f.Add(title, priority, *due)
	if err != nil {
		return err
	}
	if err := f.Save(cfg.TodoFile); err != nil {
		return err
	}
	logger.Debug("saved store", "path", cfg.TodoFile, "tasks", len(f.Tasks))

	fmt.Printf("Added todo #%d: %s\n", task.ID, task.Title)
	return nil
}

// listCommand prints the filtered todos. No side effects.
func listCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("todo list", flag.ContinueOnError)
	filterArg := fs.String("filter", cfg.DefaultFilter, "Filter (pending|done|all)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	filter, err := todo.ParseFilter(*filterArg)
	if err != nil {
		return err
	}

	f, err := todo.Load(cfg.TodoFile)
	if err != nil {
		return err
	}
	logger.Debug("loaded store", "path", cfg.TodoFile, "tasks", len(f.Tasks))

	fmt.Print(ui.RenderList(f, filter))
	return nil
}

// doneCommand marks a todo as done and saves the store.
func doneCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	id, err := parseIDArg("done", args)
	if err != nil {
		return err
	}

	f, err := todo.Load(cfg.TodoFile)
	if err != nil {
		return err
	}
	logger.Debug("loaded store", "path", cfg.TodoFile, "tasks", len(f.Tasks))

	if err := f.Complete(id); err != nil {
		return err
	}
	if err := f.Save(cfg.TodoFile); err != nil {
		return err
	}

	fmt.Printf("Marked todo #%d as done.\n", id)
	return nil
}

// removeCommand deletes a todo and saves the store.
func removeCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	id, err := parseIDArg("remove", args)
	if err != nil {
		return err
	}

	f, err := todo.Load(cfg.TodoFile)
	if err != nil {
		return err
	}
	logger.Debug("loaded store", "path", cfg.TodoFile, "tasks", len(f.Tasks))

	if err := f.Remove(id); err != nil {
		return err
	}
	if err := f.Save(cfg.TodoFile); err != nil {
		return err
	}

	fmt.Printf("Removed todo #%d.\n", id)
	return nil
}

// parseIDArg extracts the single id argument of done/remove.
func parseIDArg(command string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: todo %s <id>", command)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s: not a valid id: %s", command, args[0])
	}
	return id, nil
}
