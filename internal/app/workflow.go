package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tacogips/create-repro/internal/debug"
	"github.com/tacogips/create-repro/internal/project"
	"github.com/tacogips/create-repro/internal/publish"
	"github.com/tacogips/create-repro/internal/registry"
)

// VersionResolver looks up the published versions of the dependency.
// A nil catalog means the lookup was unavailable.
type VersionResolver interface {
	FetchCatalog(ctx context.Context) (registry.Catalog, string)
}

// Collector asks the user for the scaffolding answers.
type Collector interface {
	Collect(ctx context.Context, catalog registry.Catalog, latest string) (Answers, error)
}

// Materializer creates the project directory.
type Materializer interface {
	Root(name string) string
	Materialize(ctx context.Context, name, version string) (*project.Result, error)
}

// Publisher creates the repository of a materialized project.
type Publisher interface {
	Publish(ctx context.Context, root string, shouldPublish bool) *publish.Result
}

// Notifier shows progress to the user.
type Notifier interface {
	Progress(msg string)
	Success(msg string)
	Warning(msg string)
}

// Workflow wires the scaffolding steps together.
type Workflow struct {
	Resolver     VersionResolver
	Collector    Collector
	Materializer Materializer
	Publisher    Publisher
	Notifier     Notifier
	// Out receives the next steps.
	Out io.Writer
	// StepStyle decorates each next-step command, e.g. with colour.
	StepStyle func(string) string
	// Cwd is the directory the command was started in.
	Cwd string
}

// Outcome summarizes a completed run.
type Outcome struct {
	Answers  Answers
	Root     string
	Project  *project.Result
	Publish  *publish.Result
	Warnings []string
}

// Scaffold resolves versions, asks for answers, materializes the project,
// publishes it when requested and prints the next steps. Only input and
// materialization failures are returned; everything else is a warning.
func (w *Workflow) Scaffold(ctx context.Context) (*Outcome, error) {
	debug.DebugSection("[app] Scaffold")

	w.Notifier.Progress("Fetching versions")
	catalog, latest := w.Resolver.FetchCatalog(ctx)
	if catalog == nil {
		w.Notifier.Warning("Could not fetch versions, enter the version manually")
	} else {
		w.Notifier.Success(fmt.Sprintf("Fetched %d versions", len(catalog)))
	}
	debug.DebugValue("[app] Latest", latest)

	answers, err := w.Collector.Collect(ctx, catalog, latest)
	if err != nil {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, NewInputError("failed to collect answers", err)
	}
	if err := answers.Validate(); err != nil {
		return nil, NewInputError("invalid answers", err)
	}
	debug.DebugJSON("[app] Answers", answers)

	outcome := &Outcome{
		Answers: answers,
		Root:    w.Materializer.Root(answers.ProjectName),
	}

	w.Notifier.Progress("Creating project in " + outcome.Root)
	result, err := w.Materializer.Materialize(ctx, answers.ProjectName, answers.Version)
	if err != nil {
		var projErr *project.ProjectError
		if errors.As(err, &projErr) && projErr.Type == project.ManifestFailed {
			return nil, NewManifestError("failed to set dependency version", err)
		}
		return nil, NewMaterializeError("failed to create project", err)
	}
	outcome.Project = result
	for _, warning := range result.Warnings {
		w.Notifier.Warning(warning)
		outcome.Warnings = append(outcome.Warnings, warning)
	}
	w.Notifier.Success(fmt.Sprintf("Created project with %d files", len(result.Files)))

	if answers.PublishRepo {
		w.Notifier.Progress("Publishing repository")
	}
	outcome.Publish = w.Publisher.Publish(ctx, outcome.Root, answers.PublishRepo)
	for _, warning := range outcome.Publish.Warnings {
		w.Notifier.Warning(warning.Error())
		outcome.Warnings = append(outcome.Warnings, warning.Error())
	}
	switch {
	case outcome.Publish.RemoteCreated:
		w.Notifier.Success("Published repository")
	case outcome.Publish.Committed:
		w.Notifier.Success("Created initial commit")
	}

	if err := Report(w.Out, answers.ProjectName, answers.PackageManager, outcome.Root, w.Cwd, w.StepStyle); err != nil {
		debug.DebugValue("[app] Report failed", err)
	}
	return outcome, nil
}
