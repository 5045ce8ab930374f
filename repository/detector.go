package repository

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders by walking up from a path until
// a known marker file is found.
type Detector struct {
	markers []marker
}

type marker struct {
	file string
	kind string
}

// New creates a detector with the default marker set. Order matters: the
// first marker matched in a directory decides the project type.
func New() *Detector {
	return &Detector{
		markers: []marker{
			{"package.json", "javascript"},
			{"vite.config.ts", "javascript"},
			{"vite.config.js", "javascript"},
			{"tsconfig.json", "javascript"},
			{"go.mod", "go"},
			{".git", "git"},
		},
	}
}

// Detect identifies the project root for the given file or directory path.
// When no marker is found anywhere up the tree, the returned project has
// type "unknown" and the starting path as its root.
func (d *Detector) Detect(path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	root, kind := d.findRoot(startDir)
	project := &Project{Type: "unknown", RootPath: startDir}
	if root != "" {
		project.RootPath = root
		project.Type = kind
		project.Name = d.extractName(root, kind)
	}
	return project, nil
}

// findRoot searches up the directory tree for the first marker match.
func (d *Detector) findRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, m := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, m.file)); err == nil {
				return dir, m.kind
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ""
		}
		dir = parent
	}
}

func (d *Detector) extractName(root, kind string) string {
	switch kind {
	case "javascript":
		return extractPackageName(filepath.Join(root, "package.json"))
	case "go":
		return extractModuleName(filepath.Join(root, "go.mod"))
	default:
		return filepath.Base(root)
	}
}

var packageNameRegex = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)

// extractPackageName pulls the "name" field out of package.json. Not a full
// JSON parse, but enough for well-formed manifests.
func extractPackageName(packageJSONPath string) string {
	data, err := os.ReadFile(packageJSONPath)
	if err != nil {
		return filepath.Base(filepath.Dir(packageJSONPath))
	}
	matches := packageNameRegex.FindSubmatch(data)
	if len(matches) < 2 {
		return filepath.Base(filepath.Dir(packageJSONPath))
	}
	return string(matches[1])
}

func extractModuleName(goModPath string) string {
	fs := afs.New()
	if content, _ := fs.DownloadWithURL(context.Background(), goModPath); len(content) > 0 {
		if mod, _ := modfile.Parse(goModPath, content, nil); mod != nil && mod.Module != nil {
			return mod.Module.Mod.Path
		}
	}
	return filepath.Base(filepath.Dir(goModPath))
}
