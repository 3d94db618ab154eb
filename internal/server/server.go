// Package server exposes the import triggers over HTTP. It is presentation
// glue: parse the trigger input, run one pipeline batch, map the result to a
// JSON body and a human-readable message.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/fx"

	"storify-import/internal/domain"
	"storify-import/internal/importer"
	"storify-import/internal/ratelimit"
	"storify-import/internal/repositories/element"
	"storify-import/internal/repositories/story"
	"storify-import/pkg/config"
	"storify-import/pkg/formatter"
	"storify-import/pkg/logger"
)

type Opts struct {
	fx.In

	Importer importer.Client
	Stories  story.Repository
	Elements element.Repository
	Logger   logger.Logger
	Config   *config.Config
}

type Server struct {
	importer importer.Client
	stories  story.Repository
	elements element.Repository
	logger   logger.Logger
	config   *config.Config
	limiter  ratelimit.Limiter
}

func New(opts Opts) *Server {
	return &Server{
		importer: opts.Importer,
		stories:  opts.Stories,
		elements: opts.Elements,
		logger:   opts.Logger.WithComponent("HTTPServer"),
		config:   opts.Config,
		limiter:  ratelimit.NewInMemoryLimiter(1, 30*time.Second, 2),
	}
}

func (s *Server) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /import/user", s.handleImportUser)
	mux.HandleFunc("POST /import/story", s.handleImportStory)
	mux.HandleFunc("POST /stories/{id}/refresh", s.handleRefreshElements)
	mux.HandleFunc("GET /stories/{id}", s.handleStoryDetail)
	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

type importUserRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleImportUser(w http.ResponseWriter, r *http.Request) {
	var req importUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("bad request body: %w", domain.ErrMissingInput), nil)
		return
	}

	if req.Username != "" && !s.limiter.Allow("user:"+req.Username) {
		s.writeTooManyRequests(w, req.Username)
		return
	}

	stats, err := s.importer.ImportUserStories(r.Context(), req.Username)
	if err != nil {
		s.writeError(w, err, stats)
		return
	}
	s.writeResult(w, stats)
}

type importStoryRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleImportStory(w http.ResponseWriter, r *http.Request) {
	var req importStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("bad request body: %w", domain.ErrMissingInput), nil)
		return
	}

	if req.URL != "" && !s.limiter.Allow("story:"+req.URL) {
		s.writeTooManyRequests(w, req.URL)
		return
	}

	stats, err := s.importer.ImportStoryURL(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, err, stats)
		return
	}
	s.writeResult(w, stats)
}

func (s *Server) handleRefreshElements(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, fmt.Errorf("bad story ID: %w", domain.ErrMissingInput), nil)
		return
	}

	if !s.limiter.Allow("refresh:" + r.PathValue("id")) {
		s.writeTooManyRequests(w, r.PathValue("id"))
		return
	}

	stats, err := s.importer.RefreshStoryElements(r.Context(), id)
	if err != nil {
		s.writeError(w, err, stats)
		return
	}
	s.writeResult(w, stats)
}

type storyDetailResponse struct {
	Story    *domain.Story     `json:"story"`
	Elements []*domain.Element `json:"elements"`
}

// handleStoryDetail serves an already imported story with its elements in
// added_at order. Read-only, so no rate limit applies.
func (s *Server) handleStoryDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, fmt.Errorf("bad story ID: %w", domain.ErrMissingInput), nil)
		return
	}

	st, err := s.stories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, story.ErrNotFound) {
			s.writeJSON(w, http.StatusNotFound, errorResponse{
				Error:   "not_found",
				Message: "No imported story has that ID.",
			})
			return
		}
		s.writeError(w, errors.Join(err, domain.ErrPersist), nil)
		return
	}

	els, err := s.elements.ListByStory(r.Context(), id)
	if err != nil {
		s.writeError(w, errors.Join(err, domain.ErrPersist), nil)
		return
	}

	s.writeJSON(w, http.StatusOK, storyDetailResponse{Story: st, Elements: els})
}

type resultResponse struct {
	OK       bool   `json:"ok"`
	Imported int    `json:"imported"`
	Created  int    `json:"created"`
	Updated  int    `json:"updated"`
	Message  string `json:"message"`
}

type errorResponse struct {
	OK       bool             `json:"ok"`
	Error    domain.ErrorKind `json:"error"`
	Message  string           `json:"message"`
	Imported int              `json:"imported"`
}

func (s *Server) writeResult(w http.ResponseWriter, stats *domain.ImportStats) {
	resp := resultResponse{
		OK:       true,
		Imported: stats.Imported(),
		Created:  stats.Created,
		Updated:  stats.Updated,
		Message:  fmt.Sprintf("Imported %s items.", formatter.FormatNumber(stats.Imported())),
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeError(w http.ResponseWriter, err error, stats *domain.ImportStats) {
	kind := domain.KindOf(err)
	s.logger.Error("Import request failed", "kind", kind, "error", err)

	resp := errorResponse{
		Error:   kind,
		Message: kindMessage(kind),
	}
	if stats != nil {
		resp.Imported = stats.Imported()
	}

	s.writeJSON(w, statusForKind(kind), resp)
}

func (s *Server) writeTooManyRequests(w http.ResponseWriter, key string) {
	s.logger.Warn("Import trigger rate limited", "key", key)
	s.writeJSON(w, http.StatusTooManyRequests, errorResponse{
		Error:   "rate_limited",
		Message: "An import for this source just ran. Wait a moment before retrying.",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func kindMessage(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindMissingInput:
		return "No username, story URL, or story ID was supplied."
	case domain.KindTransport:
		return "The Storify API could not be reached."
	case domain.KindDecode:
		return "The Storify API returned a response we could not read."
	case domain.KindEmptyResult:
		return "The Storify API returned no stories or elements."
	case domain.KindNormalization:
		return "A record in the Storify response was missing required data."
	case domain.KindPersist:
		return "Importing stopped because a record could not be saved."
	default:
		return "The import failed unexpectedly."
	}
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindMissingInput:
		return http.StatusBadRequest
	case domain.KindTransport, domain.KindDecode, domain.KindEmptyResult:
		return http.StatusBadGateway
	case domain.KindNormalization:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
