package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath resolves the path spellings accepted in config values, so the
// default store "~/.todo-cli.json" and entries like "$HOME/todos.json" both
// work. A bare "~" or a "~/" prefix resolves against the home directory;
// $VAR and ${VAR} references are expanded from the environment. Anything
// else is returned as-is, relative paths included.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		if p == "~" {
			return home
		}
		return filepath.Join(home, p[2:])
	}
	return p
}
