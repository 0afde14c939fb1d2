package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// NextSteps returns the commands the user runs after scaffolding. The cd
// step is omitted when the project was created in the current directory.
func NextSteps(name string, pm PackageManager, root, cwd string) []string {
	var steps []string
	if filepath.Clean(root) != filepath.Clean(cwd) {
		if strings.Contains(name, " ") {
			steps = append(steps, fmt.Sprintf("cd \"%s\"", name))
		} else {
			steps = append(steps, "cd "+name)
		}
	}
	return append(steps, pm.InstallCommand())
}

// Report writes the next steps to w. Each command is passed through style
// when it is non-nil.
func Report(w io.Writer, name string, pm PackageManager, root, cwd string, style func(string) string) error {
	if _, err := fmt.Fprintln(w, "\nNext steps:"); err != nil {
		return err
	}
	for _, step := range NextSteps(name, pm, root, cwd) {
		if style != nil {
			step = style(step)
		}
		if _, err := fmt.Fprintf(w, "  %s\n", step); err != nil {
			return err
		}
	}
	return nil
}
