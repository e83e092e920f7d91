package manifest

import "fmt"

// DefaultVersion is the version stamped on every generated package.
const DefaultVersion = "0.1.0"

// Package is a package.json descriptor. Map fields marshal with sorted
// keys, which keeps generated output deterministic.
type Package struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type,omitempty"`
	Main            string            `json:"main,omitempty"`
	Workspaces      []string          `json:"workspaces,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// NewPackage returns a private package at DefaultVersion.
func NewPackage(name string) *Package {
	return &Package{
		Name:    name,
		Private: true,
		Version: DefaultVersion,
		Scripts: make(map[string]string),
	}
}

// AddScript sets a script entry.
func (p *Package) AddScript(name, command string) {
	if p.Scripts == nil {
		p.Scripts = make(map[string]string)
	}
	p.Scripts[name] = command
}

// AddDependency records a runtime dependency.
func (p *Package) AddDependency(name, version string) {
	if p.Dependencies == nil {
		p.Dependencies = make(map[string]string)
	}
	p.Dependencies[name] = version
}

// AddDevDependency records a development dependency.
func (p *Package) AddDevDependency(name, version string) {
	if p.DevDependencies == nil {
		p.DevDependencies = make(map[string]string)
	}
	p.DevDependencies[name] = version
}

// Encode validates the descriptor against the package schema and returns
// its JSON form.
func (p *Package) Encode() ([]byte, error) {
	data, err := encodeJSON(p)
	if err != nil {
		return nil, fmt.Errorf("encoding package %q: %w", p.Name, err)
	}
	if err := ValidatePackage(data); err != nil {
		return nil, fmt.Errorf("package %q: %w", p.Name, err)
	}
	return data, nil
}

// AddPackage validates pkg and records it at p.
func (m *Manifest) AddPackage(p string, pkg *Package) error {
	data, err := pkg.Encode()
	if err != nil {
		return err
	}
	m.Add(p, string(data))
	return nil
}

// CheckName reports whether name is usable as a package name.
func CheckName(name string) error {
	_, err := NewPackage(name).Encode()
	return err
}
