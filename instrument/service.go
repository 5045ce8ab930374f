// Package instrument applies the solid-grab injector to a whole source
// tree, producing a servable mirror with metadata attributes spliced into
// every markup opening tag. It is the batch counterpart of the per-file
// transform hook a dev-server plugin would call.
package instrument

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"

	"github.com/omniaura/solid-grab/injector"
	"github.com/omniaura/solid-grab/repository"
)

// Report summarises one instrumentation run.
type Report struct {
	Scanned   int // transform-eligible source files visited
	Changed   int // files that received injections
	Unchanged int // eligible files with no markup
	CacheHits int // files skipped because their fingerprint was unchanged
	Copied    int // non-source files copied through
}

// Service walks a project tree and instruments matching source files.
type Service struct {
	config   Config
	fs       afs.Service
	cache    *fingerprintCache
	detector *repository.Detector
	logger   *slog.Logger
}

// New creates a Service. A nil logger falls back to slog.Default.
func New(config Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	config.Init()
	return &Service{
		config:   config,
		fs:       afs.New(),
		cache:    newFingerprintCache(),
		detector: repository.New(),
		logger:   logger,
	}
}

// Run instruments the configured tree. It is safe to call repeatedly on the
// same service; the fingerprint cache skips files whose content did not
// change since the previous run.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	root, err := filepath.Abs(s.config.Root)
	if err != nil {
		return nil, fmt.Errorf("instrument: resolve root: %w", err)
	}
	project, err := s.detector.Detect(root)
	if err != nil {
		return nil, fmt.Errorf("instrument: detect project: %w", err)
	}

	outDir := s.config.OutDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(root, outDir)
	}

	skip := make(map[string]bool, len(s.config.Skip))
	for _, name := range s.config.Skip {
		skip[name] = true
	}

	report := &Report{}
	opts := s.config.Options()

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path == outDir || skip[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(outDir, rel)

		if !s.eligible(path) {
			report.Copied++
			return s.copyThrough(ctx, path, dest)
		}

		report.Scanned++
		source, err := s.fs.DownloadWithURL(ctx, path)
		if err != nil {
			return fmt.Errorf("instrument: read %s: %w", path, err)
		}

		digest, err := fingerprint(source)
		if err != nil {
			return fmt.Errorf("instrument: fingerprint %s: %w", path, err)
		}
		if s.cache.upToDate(path, digest) {
			if _, statErr := os.Stat(dest); statErr == nil {
				report.CacheHits++
				return nil
			}
		}

		identifier := project.Strip(path)
		transformed, changed := injector.Transform(string(source), identifier, opts)
		if changed {
			report.Changed++
			s.logger.Debug("instrument: injected", "file", identifier)
		} else {
			report.Unchanged++
		}
		return s.write(ctx, dest, []byte(transformed))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("instrument: run complete",
		"root", root,
		"scanned", report.Scanned,
		"changed", report.Changed,
		"cacheHits", report.CacheHits)
	return report, nil
}

// eligible reports whether a file should be transformed rather than copied.
func (s *Service) eligible(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range s.config.Extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

func (s *Service) copyThrough(ctx context.Context, path, dest string) error {
	data, err := s.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return fmt.Errorf("instrument: read %s: %w", path, err)
	}
	return s.write(ctx, dest, data)
}

func (s *Service) write(ctx context.Context, dest string, data []byte) error {
	if err := s.fs.Upload(ctx, dest, 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("instrument: write %s: %w", dest, err)
	}
	return nil
}
