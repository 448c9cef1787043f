package web

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ngmaloney/alert-banner/internal/banner"
	"github.com/ngmaloney/alert-banner/internal/stories"
)

// ServeOptions configures the HTTP listener
type ServeOptions struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves the story catalog as HTML pages
type Server struct {
	catalog []stories.Story
	router  *mux.Router
	logger  *zap.Logger
}

// NewServer creates a preview server over catalog
func NewServer(catalog []stories.Story, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		catalog: catalog,
		router:  mux.NewRouter(),
		logger:  logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/playground", s.handlePlayground).Methods(http.MethodGet)
	s.router.HandleFunc("/stories/{id}", s.handleStory).Methods(http.MethodGet)
	s.router.HandleFunc("/stories/{id}/banners/{index:[0-9]+}/{control}", s.handleActivate).Methods(http.MethodPost)
}

// Handler returns the HTTP handler for this server
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, opts ServeOptions) error {
	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      s.router,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", zap.String("addr", opts.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
		s.logger.Info("shutting down preview server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	}
}

func (s *Server) lookup(id string) (stories.Story, bool) {
	for _, st := range s.catalog {
		if st.ID == id {
			return st, true
		}
	}
	return stories.Story{}, false
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	templ.Handler(IndexPage(s.catalog)).ServeHTTP(w, r)
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	st, ok := s.lookup(id)
	if !ok {
		http.Error(w, "unknown story", http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	viewport, err := parseViewport(q.Get("viewport"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dismissed, err := parseDismissed(q.Get("dismissed"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var items []Item
	for i, e := range st.Entries(nil) {
		if dismissed[i] {
			continue
		}
		items = append(items, Item{
			Section:  e.Section,
			Banner:   banner.FromProps(e.Props, banner.WithViewport(viewport)),
			Hooks:    activationHooks(st.ID, i, dismissed, viewport),
			MaxWidth: st.Width(e),
		})
	}

	templ.Handler(StoryPage(st, items, q.Get("message"))).ServeHTTP(w, r)
}

func (s *Server) handlePlayground(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st, err := stories.Playground(stories.PlaygroundArgs{
		Severity:        q.Get("severity"),
		Variant:         q.Get("variant"),
		Title:           q.Get("title"),
		Description:     q.Get("description"),
		ShowTitle:       q.Get("showTitle"),
		ShowDescription: q.Get("showDescription"),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	viewport, err := parseViewport(q.Get("viewport"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var items []Item
	for _, e := range st.Entries(nil) {
		items = append(items, Item{
			Banner:   banner.FromProps(e.Props, banner.WithViewport(viewport)),
			MaxWidth: st.Width(e),
		})
	}
	templ.Handler(StoryPage(st, items, "")).ServeHTTP(w, r)
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	st, ok := s.lookup(vars["id"])
	if !ok {
		http.Error(w, "unknown story", http.StatusNotFound)
		return
	}

	control := banner.Control(vars["control"])
	if control != banner.ControlAction && control != banner.ControlClose {
		http.Error(w, "unknown control", http.StatusNotFound)
		return
	}

	var messages []string
	entries := st.Entries(func(msg string) { messages = append(messages, msg) })

	index, err := strconv.Atoi(vars["index"])
	if err != nil || index >= len(entries) {
		http.Error(w, "unknown banner", http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	viewport, err := parseViewport(q.Get("viewport"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dismissed, err := parseDismissed(q.Get("dismissed"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if dismissed[index] {
		http.Error(w, "banner already dismissed", http.StatusConflict)
		return
	}

	b := banner.FromProps(entries[index].Props, banner.WithViewport(viewport))
	if !b.Activate(control) {
		http.Error(w, "control not rendered by this banner", http.StatusConflict)
		return
	}
	s.logger.Info("control activated",
		zap.String("story", st.ID),
		zap.Int("banner", index),
		zap.String("control", string(control)),
		zap.Strings("messages", messages),
	)

	if control == banner.ControlClose {
		dismissed[index] = true
	}

	back := url.Values{}
	if len(messages) > 0 {
		back.Set("message", strings.Join(messages, " "))
	}
	setState(back, dismissed, viewport)

	target := "/stories/" + url.PathEscape(st.ID)
	if enc := back.Encode(); enc != "" {
		target += "?" + enc
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// activationHooks builds the form targets of banner index in a story page
func activationHooks(storyID string, index int, dismissed map[int]bool, viewport int) Hooks {
	return func(c banner.Control) string {
		u := "/stories/" + url.PathEscape(storyID) + "/banners/" + strconv.Itoa(index) + "/" + string(c)
		q := url.Values{}
		setState(q, dismissed, viewport)
		if enc := q.Encode(); enc != "" {
			u += "?" + enc
		}
		return u
	}
}

// setState carries the page state (dismissed banners, forced viewport)
// through a round trip
func setState(q url.Values, dismissed map[int]bool, viewport int) {
	if len(dismissed) > 0 {
		q.Set("dismissed", formatDismissed(dismissed))
	}
	if viewport > 0 {
		q.Set("viewport", strconv.Itoa(viewport))
	}
}

func parseViewport(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.Newf("invalid viewport %q", raw)
	}
	return v, nil
}

func parseDismissed(raw string) (map[int]bool, error) {
	dismissed := make(map[int]bool)
	if raw == "" {
		return dismissed, nil
	}
	for _, part := range strings.Split(raw, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || i < 0 {
			return nil, errors.Newf("invalid dismissed list %q", raw)
		}
		dismissed[i] = true
	}
	return dismissed, nil
}

func formatDismissed(dismissed map[int]bool) string {
	indexes := make([]int, 0, len(dismissed))
	for i := range dismissed {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

// statusRecorder captures the response status for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
