package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/zemellal/gutenshelf/internal/app"
	"github.com/zemellal/gutenshelf/internal/util"
)

// Server exposes the HTTP surface of the bookshelf service.
type Server struct {
	app *app.App
	mux *http.ServeMux
}

// New constructs the server with routes configured.
func New(core *app.App) *Server {
	s := &Server{app: core, mux: http.NewServeMux()}
	s.routes()
	return s
}

// Router returns the configured handler wrapped with the standard middleware.
func (s *Server) Router() http.Handler {
	return util.WithRequestID(util.WithRequestLog(util.WithSecurityHeaders(s.mux)))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/books", s.handleBooks)
	s.mux.HandleFunc("/books/", s.handleBookByID)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	name, err := s.app.Greeting(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the bookshelf",
		"name":    name,
	})
}

func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListBooks(w)
	case http.MethodPost:
		s.handleCreateBook(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleListBooks(w http.ResponseWriter) {
	books, err := s.app.ListBooks()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": books,
		"count": len(books),
	})
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	bookID := strings.TrimSpace(r.PostFormValue("bookId"))
	if bookID == "" {
		writeError(w, http.StatusBadRequest, "bookId is required (form field: bookId)")
		return
	}
	book, err := s.app.CreateBook(r.Context(), bookID)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

// /books/{id}, /books/{id}/read, /books/{id}/summary
func (s *Server) handleBookByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/books/")
	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	if id == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if len(parts) == 1 {
		s.handleGetBook(w, r, id)
		return
	}
	switch parts[1] {
	case "read":
		s.handleReadBook(w, r, id)
	case "summary":
		s.handleSummary(w, r, id)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request, id string) {
	book, err := s.app.GetOrFetchBook(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) handleReadBook(w http.ResponseWriter, r *http.Request, id string) {
	text, err := s.app.ReadBook(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request, id string) {
	result, err := s.app.SummarizeBook(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	// Generation failures surface inside a 200 response; the result text
	// is shown to the caller, never escalated to an HTTP error.
	writeJSON(w, http.StatusOK, result)
}

// writeAppError maps workflow errors onto the HTTP error taxonomy.
func (s *Server) writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidBookID):
		writeError(w, http.StatusBadRequest, "invalid book id")
	case errors.Is(err, app.ErrBookNotFound):
		writeError(w, http.StatusNotFound, "book not found")
	case errors.Is(err, app.ErrMetadataNotFound):
		writeError(w, http.StatusNotFound, "book metadata not found")
	case errors.Is(err, app.ErrContentUnavailable):
		writeError(w, http.StatusNotFound, "book content not found")
	case errors.Is(err, app.ErrArchiveFetch):
		writeError(w, http.StatusBadGateway, "archive fetch failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{
		Error:     msg,
		Code:      errorCode(status, msg),
		RequestID: strings.TrimSpace(w.Header().Get("X-Request-Id")),
	})
}

func errorCode(status int, msg string) string {
	switch msg {
	case "invalid book id":
		return "BOOK_INVALID_ID"
	case "book not found":
		return "BOOK_NOT_FOUND"
	case "book metadata not found":
		return "BOOK_METADATA_NOT_FOUND"
	case "book content not found":
		return "BOOK_CONTENT_NOT_FOUND"
	case "archive fetch failed":
		return "ARCHIVE_FETCH_FAILED"
	case "method not allowed":
		return "SYSTEM_METHOD_NOT_ALLOWED"
	case "not found":
		return "SYSTEM_NOT_FOUND"
	}
	switch status {
	case http.StatusBadRequest:
		return "BOOK_INVALID_REQUEST"
	case http.StatusNotFound:
		return "BOOK_NOT_FOUND"
	default:
		if status >= http.StatusInternalServerError {
			return "SYSTEM_INTERNAL_ERROR"
		}
		return "REQUEST_ERROR"
	}
}
