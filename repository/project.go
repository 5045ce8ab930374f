// Package repository locates the project root that file identifiers are
// stripped against before injection, so instrumented attributes carry
// stable project-relative paths instead of machine-local absolute ones.
package repository

import (
	"path/filepath"
	"strings"
)

// Project describes a detected project root.
type Project struct {
	RootPath string // absolute path to the project root directory
	Type     string // javascript, go, git, unknown
	Name     string // project name extracted from config files
}

// Strip rewrites an absolute file path into the project-relative identifier
// used in injected attributes. Paths outside the root, or unresolvable
// ones, are returned unchanged.
func (p *Project) Strip(path string) string {
	if p == nil || p.RootPath == "" {
		return path
	}
	rel, err := filepath.Rel(p.RootPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
