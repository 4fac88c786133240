// Package web serves the report workflow over HTTP: upload a results file,
// edit sample groups and download the workbook.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"ProteomicsReport/pkg/proteomics"
	"ProteomicsReport/pkg/wechatwork"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	"github.com/google/uuid"
)

//go:embed templates/help.md
var templateFiles embed.FS

const (
	sessionCookie = "session_id"
	xlsxMIME      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxUpload     = 32 << 20

	// DefaultSessionTTL is how long an unused session is kept.
	DefaultSessionTTL = 2 * time.Hour
)

type clientSession struct {
	// mu serializes the workflow of one client.
	mu      sync.Mutex
	session *proteomics.Session
	status  *StatusRecorder

	// lastUsed is guarded by Server.mu.
	lastUsed time.Time
}

// Server keeps one in-memory session per client cookie.
type Server struct {
	router   *chi.Mux
	notifier *wechatwork.NotificationSender

	mu       sync.Mutex
	sessions map[string]*clientSession

	// Now dates the exported files and ages sessions, time.Now when nil.
	Now func() time.Time
	// SessionTTL evicts sessions unused for longer, DefaultSessionTTL when 0.
	SessionTTL time.Duration
}

func NewServer(notifier *wechatwork.NotificationSender) *Server {
	if notifier == nil {
		notifier = wechatwork.NewNotificationSender("")
	}
	var s = &Server{
		router:   chi.NewRouter(),
		notifier: notifier,
		sessions: make(map[string]*clientSession),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleIndex)
	s.router.Post("/api/upload", s.handleUpload)
	s.router.Get("/api/groups", s.handleListGroups)
	s.router.Post("/api/groups", s.handleAddGroup)
	s.router.Post("/api/groups/defaults", s.handleLoadDefaults)
	s.router.Delete("/api/groups/{name}", s.handleRemoveGroup)
	s.router.Post("/api/export", s.handleExport)
	s.router.Get("/api/status", s.handleStatus)
	s.router.Get("/api/chart", s.handleChart)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Server) ttl() time.Duration {
	if s.SessionTTL <= 0 {
		return DefaultSessionTTL
	}
	return s.SessionTTL
}

func (s *Server) newClientSession(id string) *clientSession {
	var status = &StatusRecorder{Next: proteomics.LogReporter{Logger: slog.With("session", id)}}
	var c = &clientSession{
		session: proteomics.NewSession(status),
		status:  status,
	}
	c.session.Now = s.Now
	return c
}

// lookup returns the retained session of the request's cookie, or nil.
// The caller holds s.mu.
func (s *Server) lookup(r *http.Request) *clientSession {
	var cookie, err = r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	var c, ok = s.sessions[cookie.Value]
	if !ok {
		return nil
	}
	c.lastUsed = s.now()
	return c
}

// sweep drops sessions unused for longer than the TTL. The caller holds s.mu.
func (s *Server) sweep() {
	var deadline = s.now().Add(-s.ttl())
	for id, c := range s.sessions {
		if c.lastUsed.Before(deadline) {
			slog.Info("evict session", "session", id)
			delete(s.sessions, id)
		}
	}
}

// client returns the session of the request's cookie, creating and
// retaining one, and setting the cookie, when there is none. Only requests
// that change state call it.
func (s *Server) client(w http.ResponseWriter, r *http.Request) *clientSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	if c := s.lookup(r); c != nil {
		return c
	}

	var id = uuid.NewString()
	var c = s.newClientSession(id)
	c.lastUsed = s.now()
	s.sessions[id] = c
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: id, Path: "/", HttpOnly: true})
	return c
}

// peek returns the session of the request's cookie, or an empty session
// that is not retained.
func (s *Server) peek(r *http.Request) *clientSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.lookup(r); c != nil {
		return c
	}
	return s.newClientSession("")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	md, err := templateFiles.ReadFile("templates/help.md")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(markdown.ToHTML(md, nil, nil))
}

type datasetResponse struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	var c = s.client(w, r)
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	file, handler, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	text, err := proteomics.ReadText(file, proteomics.IsGzip(handler.Filename))
	if err != nil {
		c.status.ShowStatus(proteomics.LevelError, "Error reading file")
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.session.Upload(text); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, datasetResponse{
		Rows:    c.session.Dataset.Len(),
		Columns: c.session.Dataset.ColumnCount(),
	})
}

type groupsResponse struct {
	Groups     []string `json:"groups"`
	CanProcess bool     `json:"canProcess"`
}

func groupsOf(session *proteomics.Session) groupsResponse {
	return groupsResponse{
		Groups:     session.Registry.Groups(),
		CanProcess: session.CanProcess(),
	}
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	var c = s.peek(r)
	c.mu.Lock()
	defer c.mu.Unlock()
	writeJSON(w, http.StatusOK, groupsOf(c.session))
}

func (s *Server) handleAddGroup(w http.ResponseWriter, r *http.Request) {
	var c = s.client(w, r)
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.session.AddGroup(req.Name); err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, groupsOf(c.session))
}

func (s *Server) handleLoadDefaults(w http.ResponseWriter, r *http.Request) {
	var c = s.client(w, r)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.LoadDefaults()
	writeJSON(w, http.StatusOK, groupsOf(c.session))
}

func (s *Server) handleRemoveGroup(w http.ResponseWriter, r *http.Request) {
	var c = s.peek(r)
	// chi matches on the escaped path only when it differs from the decoded one
	var name = chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		var err error
		if name, err = url.PathUnescape(name); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.RemoveGroup(name)
	writeJSON(w, http.StatusOK, groupsOf(c.session))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var c = s.peek(r)
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.ClientLabel = r.URL.Query().Get("client")
	var data []byte
	filename, err := c.session.Process(proteomics.SaverFunc(func(_ string, b []byte) error {
		data = b
		return nil
	}))
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	if err := s.notifier.NotifyExport(filename, c.session.LastSummaries); err != nil {
		slog.Error("notify export", "filename", filename, "error", err)
	}

	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var c = s.peek(r)
	writeJSON(w, http.StatusOK, c.status.Snapshot())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	var c = s.peek(r)
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.session.LastSummaries) == 0 {
		writeError(w, http.StatusNotFound, errors.New("no export yet"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := proteomics.RenderRowsChart(w, "Proteomics report", c.session.LastSummaries); err != nil {
		slog.Error("render chart", "error", err)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, proteomics.ErrNoData), errors.Is(err, proteomics.ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, proteomics.ErrBlankName), errors.Is(err, proteomics.ErrEmptyInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
