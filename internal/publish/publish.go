// Package publish turns a materialized project into a version-controlled
// repository and optionally creates a public remote with the GitHub CLI.
//
// Every failure is reported as a warning; publication never aborts the run.
package publish

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/tacogips/create-repro/internal/debug"
	"github.com/tacogips/create-repro/internal/shell"
)

const (
	// HostingCLI is the program used to create the remote repository.
	HostingCLI = "gh"
	// HostingCLIInstallURL is where the hosting CLI can be installed from.
	HostingCLIInstallURL = "https://cli.github.com/"
	// DefaultCommitMessage is the message of the initial commit.
	DefaultCommitMessage = "Initial commit"
)

// Options configures a Publisher.
type Options struct {
	Runner        shell.Runner
	Repository    LocalRepository
	CommitMessage string
	// Stdout and Stderr receive the hosting CLI output as it runs.
	Stdout io.Writer
	Stderr io.Writer
}

// Result records what publication achieved.
type Result struct {
	// Skipped is true when publication was not requested.
	Skipped bool
	// Committed is true when the initial commit was created.
	Committed bool
	// Commit is the hash of the initial commit.
	Commit string
	// RemoteCreated is true when the hosting CLI created and pushed the remote.
	RemoteCreated bool
	// Warnings holds every step that failed, as *PublishError values.
	Warnings []error
}

func (r *Result) warn(typ PublishErrorType, message string, cause error) {
	r.Warnings = append(r.Warnings, &PublishError{Type: typ, Message: message, Cause: cause})
}

// Publisher creates the local repository and the remote.
type Publisher struct {
	runner        shell.Runner
	repo          LocalRepository
	commitMessage string
	stdout        io.Writer
	stderr        io.Writer
}

// New creates a Publisher. Missing options fall back to the real
// subprocess runner, go-git and the default commit message.
func New(opts Options) *Publisher {
	p := &Publisher{
		runner:        opts.Runner,
		repo:          opts.Repository,
		commitMessage: opts.CommitMessage,
		stdout:        opts.Stdout,
		stderr:        opts.Stderr,
	}
	if p.runner == nil {
		p.runner = shell.NewExecRunner()
	}
	if p.repo == nil {
		p.repo = NewGitRepository()
	}
	if p.commitMessage == "" {
		p.commitMessage = DefaultCommitMessage
	}
	return p
}

// Publish initializes a repository at root, commits every file and, when the
// hosting CLI is installed, creates a public remote named after root and
// pushes to it. It does nothing when shouldPublish is false. The first
// failed step ends publication, so no remote is created for a repository
// without a commit.
//
// The process working directory is never changed; every step is scoped to
// root explicitly.
func (p *Publisher) Publish(ctx context.Context, root string, shouldPublish bool) *Result {
	result := &Result{}
	if !shouldPublish {
		result.Skipped = true
		return result
	}

	debug.DebugSection("[publish] Publish")
	debug.DebugValue("[publish] Root", root)

	if err := p.repo.Init(root); err != nil {
		if !errors.Is(err, ErrRepositoryExists) {
			result.warn(InitFailed, "failed to initialize repository", err)
			return result
		}
		result.warn(RepositoryExists, "reusing the repository already in "+root, nil)
	}

	hash, err := p.repo.CommitAll(root, p.commitMessage)
	if err != nil {
		result.warn(CommitFailed, "failed to create initial commit", err)
		return result
	}
	result.Committed = true
	result.Commit = hash
	debug.DebugValue("[publish] Commit", hash)

	if !HostingCLIAvailable(ctx, p.runner) {
		result.warn(HostingCLIMissing, "GitHub CLI not found, install it from "+HostingCLIInstallURL+" to publish the repository", nil)
		return result
	}

	if err := p.runner.Run(ctx, CreateRemoteCommand(root, p.stdout, p.stderr)); err != nil {
		result.warn(RemoteFailed, "failed to create remote repository", err)
		return result
	}
	result.RemoteCreated = true
	return result
}

// CreateRemoteCommand returns the hosting CLI invocation that creates a
// public repository named after root and pushes the local one to it.
func CreateRemoteCommand(root string, stdout, stderr io.Writer) shell.Command {
	return shell.Command{
		Name: HostingCLI,
		Args: []string{
			"repo", "create", filepath.Base(root),
			"--public",
			"--disable-wiki",
			"--disable-issues",
			"--source", ".",
			"--push",
		},
		Dir:    root,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// HostingCLIAvailable reports whether the hosting CLI can be run.
func HostingCLIAvailable(ctx context.Context, runner shell.Runner) bool {
	err := runner.Run(ctx, shell.Command{Name: HostingCLI, Args: []string{"--version"}})
	if err != nil {
		debug.DebugValue("[publish] Hosting CLI probe failed", err)
		return false
	}
	return true
}
