// Package bridge is the network receiver for grabbed-context reports. A
// dev-tools client posts the formatted report produced by the resolver;
// the bridge stores a bounded window of recent grabs and exposes them for
// tooling to read back. Transport only: the payload's formatted string is
// relayed verbatim, never reinterpreted.
package bridge

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/mod/semver"
)

// Grab is the wire payload a client posts for one inspected element.
type Grab struct {
	Version   string `json:"version,omitempty"` // client plugin version, vMAJOR.MINOR.PATCH
	TagName   string `json:"tagName"`
	Source    string `json:"source,omitempty"` // "<file>:<line>:<column>"
	Formatted string `json:"formatted"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// Service accepts grabs over HTTP.
type Service struct {
	store   *Store
	version string // server version for skew detection
	logger  *slog.Logger
}

// New creates a bridge service keeping the given number of recent grabs.
func New(version string, capacity int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   NewStore(capacity),
		version: version,
		logger:  logger,
	}
}

// RegisterHTTP mounts the bridge endpoints on a chi router.
func (s *Service) RegisterHTTP(r chi.Router) {
	r.Post("/api/v1/grab", s.handleGrab)
	r.Get("/api/v1/grabs", s.handleList)
}

// Handler returns a standalone handler with the endpoints mounted.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	s.RegisterHTTP(r)
	return r
}

func (s *Service) handleGrab(w http.ResponseWriter, r *http.Request) {
	var grab Grab
	if err := json.NewDecoder(r.Body).Decode(&grab); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if grab.Formatted == "" {
		http.Error(w, "missing formatted report", http.StatusBadRequest)
		return
	}
	s.checkVersionSkew(grab.Version)
	s.store.Add(grab)
	s.logger.Info("bridge: grab received",
		"tag", grab.TagName,
		"source", grab.Source)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.store.Recent())
}

// checkVersionSkew logs mismatched client plugin versions. Skew is never a
// reason to drop a report.
func (s *Service) checkVersionSkew(clientVersion string) {
	if clientVersion == "" || s.version == "" {
		return
	}
	if !semver.IsValid(clientVersion) {
		s.logger.Warn("bridge: client reported invalid version", "version", clientVersion)
		return
	}
	if semver.Major(clientVersion) != semver.Major(s.version) {
		s.logger.Warn("bridge: client/server major version skew",
			"client", clientVersion,
			"server", s.version)
	}
}
