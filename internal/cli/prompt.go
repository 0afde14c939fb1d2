package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/tacogips/create-repro/internal/app"
	"github.com/tacogips/create-repro/internal/registry"
)

// versionPageSize is the number of versions visible at once in the select.
const versionPageSize = 15

// askOneFunc matches survey.AskOne so tests can answer prompts.
type askOneFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// surveyCollector asks the scaffolding questions on the terminal.
type surveyCollector struct {
	namePrefix string
	now        func() time.Time
	askOne     askOneFunc
}

// newSurveyCollector creates a collector whose default project name starts
// with namePrefix.
func newSurveyCollector(namePrefix string) *surveyCollector {
	return &surveyCollector{
		namePrefix: namePrefix,
		now:        time.Now,
		askOne:     survey.AskOne,
	}
}

// Collect asks every form field in order. An interrupt aborts the form.
func (c *surveyCollector) Collect(ctx context.Context, catalog registry.Catalog, latest string) (app.Answers, error) {
	fields := app.BuildForm(catalog, latest, c.namePrefix, c.now())
	values := make(map[string]string, len(fields))

	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return app.Answers{}, app.NewInputAbortedError(err)
		}

		prompt, opts := promptForField(field)
		var value string
		if err := c.askOne(prompt, &value, opts...); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return app.Answers{}, app.NewInputAbortedError(err)
			}
			return app.Answers{}, app.NewInputError(fmt.Sprintf("failed to prompt for %s", field.Name), err)
		}
		values[field.Name] = value
	}

	return app.AnswersFromValues(values)
}

// promptForField builds the survey prompt for a form field.
func promptForField(field app.Field) (survey.Prompt, []survey.AskOpt) {
	var opts []survey.AskOpt
	if field.Required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	switch field.Kind {
	case app.SelectField, app.SearchSelectField:
		sel := &survey.Select{
			Message: field.Message,
			Options: field.Options,
		}
		if field.Default != "" {
			sel.Default = field.Default
		}
		if field.Kind == app.SearchSelectField {
			sel.PageSize = versionPageSize
			sel.Help = "Type to filter the list"
		}
		return sel, opts
	default:
		return &survey.Input{
			Message: field.Message,
			Default: field.Default,
		}, opts
	}
}
