package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/mkoval/todo-cli/internal/config"
	"github.com/mkoval/todo-cli/internal/todo"
)

// doctorCommand checks config, store file, and schema validity.
func doctorCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fmt.Println("Todo Doctor")
	fmt.Println("===========")
	fmt.Println()

	allOK := true

	// Check config
	fmt.Println("Config:")
	if cfg.ConfigFile != "" {
		fmt.Printf("  ✅ Loaded from: %s\n", cfg.ConfigFile)
	} else {
		fmt.Println("  ✅ Using built-in defaults (no config file found)")
	}
	if _, err := todo.ParseFilter(cfg.DefaultFilter); err != nil {
		fmt.Printf("  ❌ default_filter: %v\n", err)
		allOK = false
	} else if *verbose {
		fmt.Printf("  ✅ default_filter: %s\n", cfg.DefaultFilter)
	}
	if _, err := todo.ParsePriority(cfg.DefaultPriority); err != nil {
		fmt.Printf("  ❌ default_priority: %v\n", err)
		allOK = false
	} else if *verbose {
		fmt.Printf("  ✅ default_priority: %s\n", cfg.DefaultPriority)
	}
	fmt.Println()

	// Check store file
	fmt.Printf("Store file: %s\n", cfg.TodoFile)
	info, err := os.Stat(cfg.TodoFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (will be created on first add)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if info.IsDir() {
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
		f, loadErr := todo.Load(cfg.TodoFile)
		if loadErr != nil {
			fmt.Printf("  ❌ Load error: %v\n", loadErr)
			allOK = false
		} else {
			result := f.Validate(todo.ValidationOptions{SchemaPath: cfg.SchemaFile})
			for _, w := range result.Warnings {
				fmt.Printf("  ⚠️  %s\n", w)
			}
			if result.Valid {
				fmt.Println("  ✅ Valid")
			} else {
				fmt.Println("  ❌ Validation failed:")
				for _, e := range result.Errors {
					fmt.Printf("     - %v\n", e)
				}
				allOK = false
			}
			if *verbose {
				fmt.Printf("  Todos: %d\n", len(f.Tasks))
				for _, t := range f.Tasks {
					box := "[ ]"
					if t.Done {
						box = "[x]"
					}
					fmt.Printf("    - %s #%d: %s\n", box, t.ID, t.Title)
				}
			}
		}
	}
	fmt.Println()

	// Check schema file
	fmt.Printf("Schema file: %s\n", cfg.SchemaFile)
	if info, err := os.Stat(cfg.SchemaFile); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (run `todo init` to create it)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if info.IsDir() {
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	// Overall status
	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}
