package app

import (
	"errors"
	"fmt"
	"strings"
)

// PackageManager is the tool used to install the project's dependencies.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
	Yarn PackageManager = "yarn"
)

// PackageManagers returns the supported package managers in form order.
func PackageManagers() []PackageManager {
	return []PackageManager{NPM, PNPM, Bun, Yarn}
}

// ParsePackageManager converts a form value into a PackageManager.
func ParsePackageManager(s string) (PackageManager, error) {
	for _, pm := range PackageManagers() {
		if string(pm) == s {
			return pm, nil
		}
	}
	return "", fmt.Errorf("unsupported package manager: %q", s)
}

// InstallCommand returns the command that installs the project's dependencies.
func (pm PackageManager) InstallCommand() string {
	if pm == Yarn {
		return "yarn"
	}
	return string(pm) + " install"
}

// Answers holds the completed form.
type Answers struct {
	ProjectName    string
	Version        string
	PackageManager PackageManager
	PublishRepo    bool
}

// Validate checks that every field is populated.
func (a Answers) Validate() error {
	if strings.TrimSpace(a.ProjectName) == "" {
		return errors.New("project name cannot be empty")
	}
	if strings.TrimSpace(a.Version) == "" {
		return errors.New("version cannot be empty")
	}
	if _, err := ParsePackageManager(string(a.PackageManager)); err != nil {
		return err
	}
	return nil
}
