package publish

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/tacogips/create-repro/internal/debug"
)

// ErrRepositoryExists is returned by Init when root is already a repository.
// The repository stays usable and CommitAll may follow.
var ErrRepositoryExists = errors.New("repository already exists")

// LocalRepository creates the local repository of a new project.
type LocalRepository interface {
	// Init creates a repository at root. It returns ErrRepositoryExists
	// when one is already there.
	Init(root string) error
	// CommitAll stages every file under root and commits it.
	// It returns the commit hash.
	CommitAll(root, message string) (string, error)
}

// GitRepository implements LocalRepository with go-git.
type GitRepository struct {
	// Author overrides the commit signature. When nil, the user.name and
	// user.email of the global git configuration are used.
	Author *object.Signature
	// Now returns the commit time. Defaults to time.Now.
	Now func() time.Time
}

// NewGitRepository creates a GitRepository using the global git identity.
func NewGitRepository() *GitRepository {
	return &GitRepository{Now: time.Now}
}

// Init creates a repository on the main branch at root.
func (g *GitRepository) Init(root string) error {
	_, err := git.PlainInitWithOptions(root, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		debug.DebugValue("[publish] Repository exists", root)
		return ErrRepositoryExists
	}
	return err
}

// CommitAll stages all files, honouring .gitignore, and commits them.
func (g *GitRepository) CommitAll(root, message string) (string, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to open worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return "", fmt.Errorf("failed to stage files: %w", err)
	}

	author, err := g.signature(repo)
	if err != nil {
		return "", err
	}

	hash, err := wt.Commit(message, &git.CommitOptions{Author: author})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return hash.String(), nil
}

// signature resolves the commit author: the explicit Author, then the
// repository's effective configuration, then the GIT_AUTHOR_* environment.
func (g *GitRepository) signature(repo *git.Repository) (*object.Signature, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	if g.Author != nil {
		sig := *g.Author
		if sig.When.IsZero() {
			sig.When = now()
		}
		return &sig, nil
	}

	name := os.Getenv("GIT_AUTHOR_NAME")
	email := os.Getenv("GIT_AUTHOR_EMAIL")

	if cfg, err := repo.ConfigScoped(gitconfig.GlobalScope); err == nil {
		if name == "" {
			name = cfg.User.Name
		}
		if email == "" {
			email = cfg.User.Email
		}
	} else {
		debug.DebugValue("[publish] Global git config unavailable", err)
	}

	if name == "" || email == "" {
		return nil, errors.New("git identity not configured (set user.name and user.email)")
	}
	return &object.Signature{Name: name, Email: email, When: now()}, nil
}
