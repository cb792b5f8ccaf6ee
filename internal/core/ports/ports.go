// Package ports defines the collaborator interfaces the scaffolding core
// depends on. Adapters live under internal/infrastructure.
package ports

// VCS initializes version-control repositories.
type VCS interface {
	// Init creates an empty repository at path and returns a handle to it.
	Init(path string) (Repo, error)
}

// Repo is a handle to a single initialized repository.
type Repo interface {
	// SetConfig applies a repository-local configuration override,
	// e.g. SetConfig("user.name", "Jane Doe").
	SetConfig(key, value string) error

	// Add stages the given paths, relative to the repository root. A
	// trailing slash on a path denotes a directory and stages its contents.
	Add(paths ...string) error

	// Commit records staged changes. Empty commits are permitted.
	Commit(message string) error

	// CreateBranch creates a new branch at the current HEAD and checks it
	// out.
	CreateBranch(name string) error

	// Checkout switches to an existing branch.
	Checkout(name string) error

	// SetRemote configures a named remote with the given URL.
	SetRemote(name, url string) error

	// Branches returns the names of all local branches.
	Branches() ([]string, error)
}

// PackageManager is the dependency-manifest collaborator. Implementations
// manage a notion of an "active project" that AddDependency and
// UpdateLockfile operate against.
type PackageManager interface {
	// GenerateSkeleton creates the base package skeleton (manifest file and
	// source entrypoint) at path and returns the created paths relative to
	// it.
	GenerateSkeleton(path, pkgName, authors, minVersion string) ([]string, error)

	// Active reports the currently active project path. Empty means the
	// default environment.
	Active() string

	// Activate switches the active project. An empty path selects the
	// default environment.
	Activate(path string) error

	// AddDependency adds a dependency to the active project's manifest.
	AddDependency(name string) error

	// UpdateLockfile regenerates the active project's lockfile.
	UpdateLockfile() error

	// Develop registers the package at path into the default working set.
	Develop(path string) error
}

// Prompter asks interactive questions. Implementations must return the
// default when the user submits an empty answer.
type Prompter interface {
	// Input asks a free-text question.
	Input(question, defaultAnswer string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(question string, defaultAnswer bool) (bool, error)

	// Select asks a closed-menu question and returns the chosen option.
	Select(question string, options []string, defaultOption string) (string, error)
}
