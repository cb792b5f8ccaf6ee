// Package gitrepo adapts go-git to the ports.VCS interface.
package gitrepo

import (
	"fmt"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/pkgsmith/pkgsmith/internal/core/ports"
)

// Service creates repositories with go-git.
type Service struct{}

// New returns a go-git backed VCS.
func New() *Service {
	return &Service{}
}

// Init implements ports.VCS.
func (*Service) Init(path string) (ports.Repo, error) {
	repo, err := git.PlainInit(path, false)
	if err != nil {
		return nil, fmt.Errorf("init repository at %s: %w", path, err)
	}
	return &Repo{repo: repo}, nil
}

// Repo wraps a single go-git repository.
type Repo struct {
	repo *git.Repository
}

// SetConfig implements ports.Repo. Keys use the usual dotted form, e.g.
// "user.name" or "branch.master.remote".
func (r *Repo) SetConfig(key, value string) error {
	cfg, err := r.repo.Config()
	if err != nil {
		return err
	}

	parts := strings.Split(key, ".")
	switch len(parts) {
	case 2:
		cfg.Raw.Section(parts[0]).SetOption(parts[1], value)
	case 3:
		cfg.Raw.Section(parts[0]).Subsection(parts[1]).SetOption(parts[2], value)
	default:
		return fmt.Errorf("malformed config key %q", key)
	}

	return r.repo.SetConfig(cfg)
}

// Add implements ports.Repo. A trailing slash is accepted for directories.
func (r *Repo) Add(paths ...string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}
	for _, p := range paths {
		p = strings.TrimSuffix(p, "/")
		if _, err := wt.Add(p); err != nil {
			return fmt.Errorf("stage %s: %w", p, err)
		}
	}
	return nil
}

// Commit implements ports.Repo. Empty commits are allowed so a repository
// can start from an empty initial commit.
func (r *Repo) Commit(message string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}
	_, err = wt.Commit(message, &git.CommitOptions{
		AllowEmptyCommits: true,
		Author:            r.signature(),
	})
	return err
}

// signature resolves the commit author from repository configuration,
// falling back to a fixed identity so generation works without global git
// config.
func (r *Repo) signature() *object.Signature {
	name, email := "pkgsmith", "pkgsmith@localhost"
	if cfg, err := r.repo.Config(); err == nil {
		if cfg.User.Name != "" {
			name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			email = cfg.User.Email
		}
	}
	return &object.Signature{Name: name, Email: email, When: time.Now()}
}

// CreateBranch implements ports.Repo: creates the branch at HEAD and checks
// it out.
func (r *Repo) CreateBranch(name string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
}

// Checkout implements ports.Repo.
func (r *Repo) Checkout(name string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
	})
}

// SetRemote implements ports.Repo.
func (r *Repo) SetRemote(name, url string) error {
	_, err := r.repo.CreateRemote(&config.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	return err
}

// Branches implements ports.Repo.
func (r *Repo) Branches() ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, err
	}
	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	return names, err
}
