// Package web serves the browser front end. Each request runs a pipeline to
// completion and answers with the rendered view fragment; the page script
// swaps fragments into the matching region.
package web

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/f3rmion/tamprogen/internal/pipeline"
	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/f3rmion/tamprogen/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server holds the HTTP handlers.
type Server struct {
	client pipeline.Dispatcher
	log    zerolog.Logger
}

// NewServer creates a server that forwards queries to client.
func NewServer(client pipeline.Dispatcher, log zerolog.Logger) *Server {
	return &Server{
		client: client,
		log:    log.With().Str("component", "web").Logger(),
	}
}

// Router returns the chi router for the front end.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Route("/ui", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Post("/filter", s.handleFilter)
		r.Get("/loading/{pipeline}", s.handleLoading)
	})

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Categories []proverb.Category
	}{Categories: proverb.Categories}
	if err := page.Execute(w, data); err != nil {
		s.log.Error().Err(err).Msg("rendering index")
	}
}

// handleSearch runs one search against the posted input_text.
// POST /ui/search
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	board := render.NewBoard()
	fields := pipeline.NewFields()
	fields.SetSearchText(r.PostFormValue("input_text"))

	pipeline.NewSearch(s.client, fields, board, s.log).Run(r.Context())
	writeView(w, board.View(proverb.PipelineSearch))
}

// handleFilter runs one filter against the posted type and keyword.
// POST /ui/filter
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	board := render.NewBoard()
	fields := pipeline.NewFields()
	fields.SetFilter(proverb.Category(r.PostFormValue("type")), r.PostFormValue("keyword"))

	pipeline.NewFilter(s.client, fields, board, s.log).Run(r.Context())
	writeView(w, board.View(proverb.PipelineFilter))
}

// handleLoading returns the loading fragment the page shows before it
// posts a query.
// GET /ui/loading/{pipeline}?echo=
func (s *Server) handleLoading(w http.ResponseWriter, r *http.Request) {
	id := proverb.PipelineID(chi.URLParam(r, "pipeline"))
	if id != proverb.PipelineSearch && id != proverb.PipelineFilter {
		http.Error(w, "unknown pipeline", http.StatusNotFound)
		return
	}
	echo := strings.TrimSpace(r.URL.Query().Get("echo"))
	writeView(w, render.Render(id, proverb.Loading(echo)))
}

func writeView(w http.ResponseWriter, v render.View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-View-Kind", string(v.Kind))
	w.Write([]byte(v.HTML))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

var page = template.Must(template.New("page").Parse(pageHTML))
