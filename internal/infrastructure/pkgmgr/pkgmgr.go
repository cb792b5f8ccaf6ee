// Package pkgmgr is the dependency-manifest collaborator: it writes Julia
// Project.toml / Manifest.toml files and maintains a default environment
// acting as the active working set.
package pkgmgr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pkgsmith/pkgsmith/internal/core/scaffold"
)

// Known standard-library package UUIDs, as recorded in package manifests.
var stdlibUUIDs = map[string]string{
	"Test":          "8dfed614-e22c-5e08-85e1-65c5234f0b40",
	"Random":        "9a3f8284-a2c9-5f02-9a11-845980a1fd5c",
	"LinearAlgebra": "37e2e46d-f89d-539d-b4ee-838fcccc9c8e",
	"Pkg":           "44cfe95a-1eb2-52ea-b672-e2afdf69b78f",
}

// Service implements ports.PackageManager against the filesystem.
type Service struct {
	defaultEnv string
	active     string
}

// New builds a Service whose default environment lives at defaultEnv. An
// empty defaultEnv selects ~/.julia/environments/default.
func New(defaultEnv string) (*Service, error) {
	if defaultEnv == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		defaultEnv = filepath.Join(home, ".julia", "environments", "default")
	}
	return &Service{defaultEnv: defaultEnv}, nil
}

// Active implements ports.PackageManager.
func (s *Service) Active() string {
	return s.active
}

// Activate implements ports.PackageManager. An empty path selects the
// default environment.
func (s *Service) Activate(path string) error {
	s.active = path
	return nil
}

// activeDir resolves the directory holding the active project file.
func (s *Service) activeDir() (string, error) {
	if s.active != "" {
		return s.active, nil
	}
	if err := os.MkdirAll(s.defaultEnv, 0o755); err != nil {
		return "", err
	}
	project := filepath.Join(s.defaultEnv, "Project.toml")
	if _, err := os.Stat(project); os.IsNotExist(err) {
		if err := os.WriteFile(project, nil, 0o644); err != nil {
			return "", err
		}
	}
	return s.defaultEnv, nil
}

const sourceTemplate = `module {{PKG}}

greet() = print("Hello World!")

end # module
`

// GenerateSkeleton implements ports.PackageManager: it writes the manifest
// file and the source entrypoint for a fresh package.
func (s *Service) GenerateSkeleton(path, pkgName, authors, minVersion string) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(path, "src"), 0o755); err != nil {
		return nil, err
	}

	source, err := scaffold.Render(sourceTemplate, map[string]interface{}{"PKG": pkgName})
	if err != nil {
		return nil, err
	}
	entry := filepath.Join("src", pkgName+".jl")
	if err := os.WriteFile(filepath.Join(path, entry), []byte(source), 0o644); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "name = %q\n", pkgName)
	fmt.Fprintf(&b, "uuid = %q\n", uuid.New())
	if authors != "" {
		fmt.Fprintf(&b, "authors = [%q]\n", authors)
	}
	b.WriteString("version = \"0.1.0\"\n")
	fmt.Fprintf(&b, "\n[compat]\njulia = %q\n", minVersion)
	if err := os.WriteFile(filepath.Join(path, "Project.toml"), []byte(b.String()), 0o644); err != nil {
		return nil, err
	}

	return []string{"src/", "Project.toml"}, nil
}

// AddDependency implements ports.PackageManager: it records a dependency in
// the active project's [deps] section.
func (s *Service) AddDependency(name string) error {
	id, ok := stdlibUUIDs[name]
	if !ok {
		return fmt.Errorf("unknown package %q", name)
	}
	dir, err := s.activeDir()
	if err != nil {
		return err
	}
	return addDep(filepath.Join(dir, "Project.toml"), name, id)
}

func addDep(projectFile, name, id string) error {
	raw, err := os.ReadFile(projectFile)
	if err != nil {
		return err
	}
	entry := fmt.Sprintf("%s = %q", name, id)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "[deps]" {
			lines = append(lines[:i+1], append([]string{entry}, lines[i+1:]...)...)
			return os.WriteFile(projectFile, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
		}
	}

	content := strings.TrimRight(string(raw), "\n")
	if content != "" {
		content += "\n"
	}
	content += "\n[deps]\n" + entry + "\n"
	return os.WriteFile(projectFile, []byte(content), 0o644)
}

// UpdateLockfile implements ports.PackageManager: it regenerates the active
// project's Manifest.toml from the [deps] it declares.
func (s *Service) UpdateLockfile() error {
	dir, err := s.activeDir()
	if err != nil {
		return err
	}
	deps, err := readDeps(filepath.Join(dir, "Project.toml"))
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("# This file is machine-generated - editing it directly is not advised\n\n")
	b.WriteString("manifest_format = \"2.0\"\n")
	for _, dep := range deps {
		fmt.Fprintf(&b, "\n[[deps.%s]]\nuuid = %q\n", dep.name, dep.uuid)
	}
	return os.WriteFile(filepath.Join(dir, "Manifest.toml"), []byte(b.String()), 0o644)
}

// Develop implements ports.PackageManager: it registers the package at path
// into the default environment's working set.
func (s *Service) Develop(path string) error {
	name, id, err := readProjectIdentity(filepath.Join(path, "Project.toml"))
	if err != nil {
		return err
	}
	saved := s.active
	s.active = ""
	defer func() { s.active = saved }()

	dir, err := s.activeDir()
	if err != nil {
		return err
	}
	return addDep(filepath.Join(dir, "Project.toml"), name, id)
}

type dep struct {
	name string
	uuid string
}

func readDeps(projectFile string) ([]dep, error) {
	raw, err := os.ReadFile(projectFile)
	if err != nil {
		return nil, err
	}
	var deps []dep
	inDeps := false
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inDeps = trimmed == "[deps]"
			continue
		}
		if !inDeps || trimmed == "" {
			continue
		}
		name, id, ok := splitAssignment(trimmed)
		if ok {
			deps = append(deps, dep{name: name, uuid: id})
		}
	}
	return deps, nil
}

func readProjectIdentity(projectFile string) (name, id string, err error) {
	raw, err := os.ReadFile(projectFile)
	if err != nil {
		return "", "", err
	}
	for _, line := range strings.Split(string(raw), "\n") {
		if k, v, ok := splitAssignment(strings.TrimSpace(line)); ok {
			switch k {
			case "name":
				name = v
			case "uuid":
				id = v
			}
		}
	}
	if name == "" || id == "" {
		return "", "", fmt.Errorf("%s lacks a name or uuid", projectFile)
	}
	return name, id, nil
}

func splitAssignment(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.Trim(strings.TrimSpace(value), `"`)
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}
