// Package server exposes the fake terminal over HTTP: command execution,
// translation, autocomplete, per-session history, process metrics and the
// single page terminal UI.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/brettbedarf/pycommander"
	"github.com/brettbedarf/pycommander/config"
	"github.com/brettbedarf/pycommander/internal/util"
	"github.com/brettbedarf/pycommander/shell"
	"github.com/brettbedarf/pycommander/translate"
	"github.com/puzpuzpuz/xsync/v4"
)

// Server owns the dispatcher, translator and session store behind one
// http.Server.
type Server struct {
	cfg        *config.Config
	dispatcher *shell.Dispatcher
	translator pycommander.Translator
	sessions   *xsync.Map[string, *Session]
	started    time.Time
	now        func() time.Time
	httpServer *http.Server
}

// New creates a Server for the given config. fs is the tree every request
// operates on. A nil translator falls back to one built from cfg.AI.
func New(cfg *config.Config, fs pycommander.FileSystemOperator, translator pycommander.Translator) *Server {
	if translator == nil {
		translator = translate.New(cfg.AI)
	}
	s := &Server{
		cfg:        cfg,
		dispatcher: shell.NewDispatcher(fs, translator),
		translator: translator,
		sessions:   xsync.NewMap[string, *Session](),
		started:    time.Now(),
		now:        time.Now,
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          util.NewLogLogger("HTTPServer", util.ErrorLevel),
	}
	return s
}

// Handler returns the route multiplexer. It is usable without Serve, which
// is how tests drive the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/command", s.handleCommand)
	mux.HandleFunc("POST /api/translate", s.handleTranslate)
	mux.HandleFunc("GET /api/complete", s.handleComplete)
	mux.HandleFunc("POST /api/session", s.handleNewSession)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/metrics", s.handleMetrics)
	mux.Handle("GET /", staticHandler())
	return logRequests(mux)
}

// Serve listens on the configured address and blocks until the server is
// shut down.
func (s *Server) Serve() error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	return s.serve(ln)
}

func (s *Server) serve(ln net.Listener) error {
	logger := util.GetLogger("Server")
	logger.Info().Str("addr", ln.Addr().String()).Msg("Serving PyCommander")

	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ServeAsync runs Serve in the background. The returned channel yields its
// result once and is then closed.
func (s *Server) ServeAsync() <-chan error {
	done := make(chan error, 1)

	go func() {
		done <- s.Serve()
		close(done)
	}()

	return done
}

// Shutdown gracefully stops a running server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// logRequests traces every request with its duration
func logRequests(next http.Handler) http.Handler {
	logger := util.GetLogger("HTTP")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Trace().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}
