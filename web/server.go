// Package web serves the browse UI: a single server-rendered page with
// filter controls and the movie card grid.
//
// The page is a pure render of the session's current (status, derived
// view, criteria). Handlers translate query parameters into session
// mutations and redirect back to the index; all session access is
// serialized behind one mutex, so no two updates interleave.
package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/reelgrid/reelgrid/catalog"
	"github.com/reelgrid/reelgrid/session"
)

// detailURLFormat is the external detail page, keyed by title ID
const detailURLFormat = "https://play.reelgrid.dev/title/%d"

// Server hosts the browse UI for one session
type Server struct {
	logger zerolog.Logger
	http   *http.Server

	mu      sync.Mutex
	session *session.Session
}

// NewServer creates the browse server around an existing session
func NewServer(addr string, sess *session.Session, logger zerolog.Logger) *Server {
	s := &Server{
		logger:  logger,
		session: sess,
	}

	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/filter", s.handleFilter)
	r.Get("/genres/add", s.handleAddGenre)
	r.Get("/genres/remove", s.handleRemoveGenre)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.http = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start blocks serving the UI until Shutdown or a listener error
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("Browse UI listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// OnCatalogResult delivers the single fetch outcome to the session
func (s *Server) OnCatalogResult(movies []catalog.Movie, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Error().Err(err).Msg("Catalog load failed")
		s.session.OnDataFailed(err)
		return
	}

	s.session.OnDataLoaded(movies)
	s.logger.Info().Int("movies", len(movies)).Msg("Catalog loaded")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := s.snapshot()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render page")
	}
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	minYear := parseYear(r.URL.Query().Get("min_year"))
	maxYear := parseYear(r.URL.Query().Get("max_year"))

	s.mu.Lock()
	s.session.SetMinYear(minYear)
	s.session.SetMaxYear(maxYear)
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAddGenre(w http.ResponseWriter, r *http.Request) {
	if genre := r.URL.Query().Get("genre"); genre != "" {
		s.mu.Lock()
		s.session.AddGenre(genre)
		s.mu.Unlock()
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRemoveGenre(w http.ResponseWriter, r *http.Request) {
	if genre := r.URL.Query().Get("genre"); genre != "" {
		s.mu.Lock()
		s.session.RemoveGenre(genre)
		s.mu.Unlock()
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseYear maps a form value onto an optional year bound.
// Empty or unparseable input clears the bound.
func parseYear(value string) *int {
	if value == "" {
		return nil
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &year
}

// snapshot copies the session state into render data under the lock
func (s *Server) snapshot() pageData {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := pageData{
		Status: s.session.Status(),
	}

	if err := s.session.Err(); err != nil {
		data.Error = err.Error()
	}

	criteria := s.session.Criteria()
	if criteria.MinYear != nil {
		data.MinYear = strconv.Itoa(*criteria.MinYear)
	}
	if criteria.MaxYear != nil {
		data.MaxYear = strconv.Itoa(*criteria.MaxYear)
	}
	data.Selected = criteria.Genres()

	view := s.session.View()
	for _, g := range view.GenresAvailable {
		if !criteria.HasGenre(g) {
			data.Pickable = append(data.Pickable, g)
		}
	}

	data.Cards = make([]card, 0, len(view.Shown))
	for _, m := range view.Shown {
		data.Cards = append(data.Cards, card{
			Title:       m.Title,
			Year:        m.Year,
			Runtime:     m.Runtime,
			Rating:      m.Rating,
			Description: m.Description,
			ThumbURL:    m.ThumbURL,
			DetailURL:   fmt.Sprintf(detailURLFormat, m.ID),
		})
	}

	return data
}
