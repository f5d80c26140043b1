package entities

import "strconv"

// Dependency is a versioned dependency declared in a repository manifest.
type Dependency struct {
	Name     string   // Package identity as the ecosystem names it
	Version  string   // Declared version or constraint, as written
	Type     EdgeType // direct, dev, peer or transitive
	FilePath string   // Manifest where this dependency was found
	Line     int      // Line number in the manifest, 0 when unknown
}

// Location renders where the dependency was declared as "file:line", or just the
// file when the line is unknown.
func (d Dependency) Location() string {
	if d.FilePath == "" {
		return ""
	}
	if d.Line <= 0 {
		return d.FilePath
	}
	return d.FilePath + ":" + strconv.Itoa(d.Line)
}

// Manifest is the parsed content of one ecosystem's manifest inside a repository.
type Manifest struct {
	PackageManager string // npm, pip, maven, cargo, go, terraform
	Name           string // Package published by the repository, "" when none
	Version        string
	FilePath       string
	Dependencies   []Dependency
}

// ScannedRepository groups every manifest found in one repository checkout.
type ScannedRepository struct {
	Repository string // owner/repo
	Path       string
	Manifests  []Manifest
}
