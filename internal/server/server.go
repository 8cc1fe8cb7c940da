package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/wheelbet/internal/handler"
	"github.com/osse101/wheelbet/internal/logger"
	"github.com/osse101/wheelbet/internal/metrics"
	"github.com/osse101/wheelbet/internal/sse"
)

// Info identifies the running game for /version and formatted amounts
type Info struct {
	Service  string
	Version  string
	Currency string
}

// Server is the optional local status server. It only reads game state.
type Server struct {
	httpServer *http.Server
	hub        *sse.Hub
}

// NewServer creates a status server bound to addr
func NewServer(addr string, info Info, reader handler.SnapshotReader, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(info, reader, hub),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
		hub: hub,
	}
}

// NewRouter builds the route table
func NewRouter(info Info, reader handler.SnapshotReader, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(reader))
	r.Get(PathVersion, handler.HandleVersion(info.Service, info.Version))
	r.Handle(PathMetrics, promhttp.Handler())
	r.Get(PathEvents, sse.Handler(hub))

	r.Route(PathAPIV1, func(r chi.Router) {
		r.Get(PathState, handler.HandleGetState(reader, info.Currency))
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		logger.FromContext(r.Context()).Debug(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start starts the SSE hub and serves until Stop. A clean shutdown returns nil.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve is Start on an existing listener
func (s *Server) Serve(ln net.Listener) error {
	s.hub.Start()
	logger.Info(LogMsgServerStarting, "addr", ln.Addr().String())

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop closes open SSE streams, then shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.hub.Stop()
	err := s.httpServer.Shutdown(ctx)
	logger.Info(LogMsgServerStopped)
	return err
}
