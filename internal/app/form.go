package app

import (
	"fmt"
	"time"

	"github.com/tacogips/create-repro/internal/registry"
)

// Form field names, in the order they are asked.
const (
	FieldProjectName    = "projectName"
	FieldVersion        = "version"
	FieldPackageManager = "packageManager"
	FieldPublishRepo    = "publishRepo"
)

// Choices of the publish field.
const (
	ChoiceYes = "yes"
	ChoiceNo  = "no"
)

// FieldKind selects how a field is rendered.
type FieldKind int

const (
	// TextField is free text input.
	TextField FieldKind = iota
	// SelectField is a single choice from Options.
	SelectField
	// SearchSelectField is a single choice from Options that can be filtered by typing.
	SearchSelectField
)

// Field describes one question of the form.
type Field struct {
	Name    string
	Message string
	Kind    FieldKind
	// Options are the choices of a select field.
	Options []string
	// Default is the pre-filled value. Empty means no default.
	Default string
	// Required rejects an empty answer.
	Required bool
}

// BuildForm returns the scaffolding form. With a catalog the version is
// picked from it, defaulting to latest; without one it is typed in.
func BuildForm(catalog registry.Catalog, latest, namePrefix string, now time.Time) []Field {
	version := Field{
		Name:     FieldVersion,
		Message:  "Version:",
		Kind:     TextField,
		Required: true,
	}
	if len(catalog) > 0 {
		version.Kind = SearchSelectField
		version.Options = []string(catalog)
		version.Default = catalog[DefaultVersionIndex(catalog, latest)]
	}

	managers := make([]string, 0, len(PackageManagers()))
	for _, pm := range PackageManagers() {
		managers = append(managers, string(pm))
	}

	return []Field{
		{
			Name:     FieldProjectName,
			Message:  "Project name:",
			Kind:     TextField,
			Default:  DefaultProjectName(namePrefix, now),
			Required: true,
		},
		version,
		{
			Name:    FieldPackageManager,
			Message: "Package manager:",
			Kind:    SelectField,
			Options: managers,
		},
		{
			Name:    FieldPublishRepo,
			Message: "Create a public GitHub repository?",
			Kind:    SelectField,
			Options: []string{ChoiceYes, ChoiceNo},
		},
	}
}

// DefaultVersionIndex returns the index of latest in catalog, or 0 when
// latest is empty or not listed.
func DefaultVersionIndex(catalog registry.Catalog, latest string) int {
	if latest == "" {
		return 0
	}
	if idx := catalog.IndexOf(latest); idx >= 0 {
		return idx
	}
	return 0
}

// DefaultProjectName returns prefix followed by the Unix time in milliseconds.
func DefaultProjectName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

// AnswersFromValues builds Answers from the raw form values keyed by field name.
func AnswersFromValues(values map[string]string) (Answers, error) {
	pm, err := ParsePackageManager(values[FieldPackageManager])
	if err != nil {
		return Answers{}, NewInputError("invalid answers", err)
	}

	var publishRepo bool
	switch values[FieldPublishRepo] {
	case ChoiceYes:
		publishRepo = true
	case ChoiceNo, "":
	default:
		return Answers{}, NewInputError("invalid answers", fmt.Errorf("unexpected publish choice: %q", values[FieldPublishRepo]))
	}

	answers := Answers{
		ProjectName:    values[FieldProjectName],
		Version:        values[FieldVersion],
		PackageManager: pm,
		PublishRepo:    publishRepo,
	}
	if err := answers.Validate(); err != nil {
		return Answers{}, NewInputError("invalid answers", err)
	}
	return answers, nil
}
