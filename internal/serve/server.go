// Package serve exposes a parsed structure tree over HTTP. The server
// watches the backing file and reloads it on change, so a long-running
// viewer always reflects the latest parse.
package serve

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/schmitthub/cliscope/internal/cst"
	"github.com/schmitthub/cliscope/internal/logger"
)

// Server serves a structure tree file over HTTP.
type Server struct {
	path string

	mu   sync.RWMutex
	tree *cst.Node
	raw  []byte
}

// NewServer creates a Server for the tree file at path and performs the
// initial load.
func NewServer(path string) (*Server, error) {
	s := &Server{path: path}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Tree returns the currently loaded tree.
func (s *Server) Tree() *cst.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

func (s *Server) reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read structure file: %w", err)
	}

	var tree cst.Node
	if err := json.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to parse structure file: %w", err)
	}

	s.mu.Lock()
	s.tree = &tree
	s.raw = data
	s.mu.Unlock()
	return nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/structure", s.handleStructure)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleStructure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.RLock()
	raw := s.raw
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}} structure</title>
<style>
body { font-family: monospace; margin: 2em; }
summary { cursor: pointer; }
.flag { color: #0a7; }
.desc { color: #888; }
</style>
</head>
<body>
<h1>{{.Name}}{{if .Version}} <small>({{.Version}})</small>{{end}}</h1>
<p class="desc">{{.Description}}</p>
<p>Raw tree: <a href="/api/structure">/api/structure</a></p>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	tree := s.Tree()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, tree); err != nil {
		logger.Error().Err(err).Msg("failed to render index page")
	}
}

// Watch reloads the tree whenever the backing file changes. It blocks
// until ctx is canceled. Editors often replace files via rename, so
// the parent directory is watched rather than the file itself.
func (s *Server) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Writers may still be mid-write when the event fires.
			time.Sleep(50 * time.Millisecond)
			if err := s.reload(); err != nil {
				logger.Warn().Err(err).Str("path", s.path).Msg("failed to reload structure file")
				continue
			}
			logger.Info().Str("path", s.path).Msg("structure file reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// ListenAndServe starts the HTTP server on addr and the file watcher,
// blocking until ctx is canceled or the server fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := s.Watch(ctx); err != nil && ctx.Err() == nil {
			logger.Error().Err(err).Msg("file watcher stopped")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", addr).Str("path", s.path).Msg("serving structure tree")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
