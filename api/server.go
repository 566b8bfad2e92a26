// Package api exposes a decoded .abc container over HTTP+JSON:
// load a file, then query its header, classes, methods, strings, and
// per-method disassembly. It mirrors the teacher's session-oriented
// VM-state server, but this domain has no running state to step
// through — one loaded file stands in for one session.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/arkbc/abcdis/abcfile"
	"github.com/arkbc/abcdis/internal/container"
	"github.com/arkbc/abcdis/loader"
	"github.com/arkbc/abcdis/tools"
)

// Server is the HTTP API server. It holds at most one decoded file at
// a time, set by POST /api/v1/load.
type Server struct {
	mu   sync.RWMutex
	file *abcfile.File

	mux    *http.ServeMux
	server *http.Server
	port   int

	version, commit, date string
}

// NewServer creates a server with the given port and no file loaded.
func NewServer(port int) *Server {
	return NewServerWithVersion(port, "dev", "unknown", "unknown")
}

// NewServerWithVersion creates a server stamped with build metadata,
// reported by /health.
func NewServerWithVersion(port int, version, commit, date string) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		port:    port,
		version: version,
		commit:  commit,
		date:    date,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/load", s.handleLoad)
	s.mux.HandleFunc("/api/v1/header", s.handleHeader)
	s.mux.HandleFunc("/api/v1/classes", s.handleClasses)
	s.mux.HandleFunc("/api/v1/methods", s.handleMethods)
	s.mux.HandleFunc("/api/v1/strings", s.handleStrings)
	s.mux.HandleFunc("/api/v1/disassemble", s.handleDisassemble)
	s.mux.HandleFunc("/api/v1/validate", s.handleValidate)
}

// Handler returns the HTTP handler with CORS middleware applied.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.mux)
}

// Start starts the HTTP server, listening on localhost only.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("abcdis API server starting on http://127.0.0.1:%d", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if isAllowedOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// isAllowedOrigin restricts CORS to localhost origins, same policy as
// the teacher's server: this is a local inspection tool, not a public
// API.
func isAllowedOrigin(origin string) bool {
	if origin == "" {
		return true
	}
	if strings.HasPrefix(origin, "file://") {
		return true
	}
	return strings.HasPrefix(origin, "http://localhost") ||
		strings.HasPrefix(origin, "https://localhost") ||
		strings.HasPrefix(origin, "http://127.0.0.1") ||
		strings.HasPrefix(origin, "https://127.0.0.1")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"commit":  s.commit,
		"date":    s.date,
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoadRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	buf, err := loader.Load(req.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := abcfile.New(buf.Bytes, abcfile.DefaultWarn)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	s.file = f
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, LoadResponse{
		NumClasses: len(f.ClassNames()),
		NumMethods: len(f.MethodNames()),
		NumStrings: len(f.Strings()),
	})
}

// currentFile returns the loaded file, or an error response already
// written if none is loaded.
func (s *Server) currentFile(w http.ResponseWriter) (*abcfile.File, bool) {
	s.mu.RLock()
	f := s.file
	s.mu.RUnlock()

	if f == nil {
		writeError(w, http.StatusBadRequest, "no file loaded; POST /api/v1/load first")
		return nil, false
	}
	return f, true
}

func (s *Server) handleHeader(w http.ResponseWriter, r *http.Request) {
	f, ok := s.currentFile(w)
	if !ok {
		return
	}
	h := f.Header()
	writeJSON(w, http.StatusOK, HeaderResponse{
		FileSize:    h.FileSize,
		ForeignOff:  h.ForeignOff,
		ForeignSize: h.ForeignSize,
		NumClasses:  h.NumClasses,
		ClassIdxOff: h.ClassIdxOff,
		RegionSize:  h.RegionSize,
		RegionOff:   h.RegionOff,
	})
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	f, ok := s.currentFile(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ClassesResponse{Classes: f.ClassNames()})
}

func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	f, ok := s.currentFile(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, MethodsResponse{Methods: f.MethodNames()})
}

func (s *Server) handleStrings(w http.ResponseWriter, r *http.Request) {
	f, ok := s.currentFile(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, StringsResponse{Strings: f.Strings()})
}

func (s *Server) handleDisassemble(w http.ResponseWriter, r *http.Request) {
	f, ok := s.currentFile(w)
	if !ok {
		return
	}

	method := r.URL.Query().Get("method")
	if method == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'method' required")
		return
	}

	insns, err := f.DisassembleMethod(method)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	out := make([]InstructionResponse, len(insns))
	for i, in := range insns {
		out[i] = InstructionResponse{
			Offset:   in.Offset,
			HexDump:  in.HexDump(),
			Mnemonic: in.Mnemonic,
			Operands: in.Operands,
		}
	}

	writeJSON(w, http.StatusOK, DisassembleResponse{Method: method, Instructions: out})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	f := s.file
	s.mu.RUnlock()
	if f == nil {
		writeError(w, http.StatusBadRequest, "no file loaded; POST /api/v1/load first")
		return
	}

	// Re-run validation against the same bytes the loaded file was
	// built from isn't available here (File doesn't expose its raw
	// buffer); region disjointness alone is cheap to check directly.
	report := &tools.Report{}
	regions := make([]container.Region, len(f.Regions()))
	copy(regions, f.Regions())
	sort.Slice(regions, func(i, j int) bool { return regions[i].Start < regions[j].Start })
	for i := 1; i < len(regions); i++ {
		prev := regions[i-1]
		cur := regions[i]
		if cur.Start < prev.End {
			report.Issues = append(report.Issues, tools.Issue{
				Level:   tools.IssueError,
				Message: fmt.Sprintf("region [0x%x,0x%x) overlaps [0x%x,0x%x)", prev.Start, prev.End, cur.Start, cur.End),
				Code:    "REGION_OVERLAP",
			})
		}
	}

	issues := make([]IssueDetail, len(report.Issues))
	for i, iss := range report.Issues {
		issues[i] = IssueDetail{Level: iss.Level.String(), Message: iss.Message, Code: iss.Code}
	}
	writeJSON(w, http.StatusOK, ValidateResponse{HasErrors: report.HasErrors(), Issues: issues})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("api: error encoding JSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024*1024))
	return decoder.Decode(v)
}
