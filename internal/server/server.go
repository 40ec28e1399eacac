package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/readmecraft/readmecraft/internal/preview"
	"github.com/readmecraft/readmecraft/internal/templates"
)

// maxBodyBytes bounds request bodies accepted by the API.
const maxBodyBytes = 1 << 20

// Options configures the preview server.
type Options struct {
	// Address is the host:port to listen on.
	Address string

	// WatchFile is the Markdown file rendered at / and watched for changes.
	// Empty serves an index page instead.
	WatchFile string

	// Templates resolves template names for the API.
	Templates templates.Loader

	// Logger receives request and reload logs. Nil uses slog.Default().
	Logger *slog.Logger

	// OnReload is called after browsers were told to reload.
	OnReload func(clients int)
}

// Server is the preview server.
type Server struct {
	options    Options
	logger     *slog.Logger
	router     chi.Router
	reload     *ReloadServer
	metrics    *Metrics
	watcher    *Watcher
	httpServer *http.Server

	mu       sync.Mutex
	running  bool
	listener net.Listener
}

// New creates a preview server.
func New(options Options) *Server {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		options: options,
		logger:  logger,
		metrics: NewMetrics(),
	}
	s.reload = NewReloadServer(s.metrics.SetReloadClients)
	if options.WatchFile != "" {
		s.watcher = NewWatcher(options.WatchFile, DefaultDebounce, logger)
		s.watcher.OnChange(s.handleFileChange)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)
	r.Use(Tracing)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get(ReloadPath, s.reload.HandleWebSocket)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.handleListTemplates)
		r.Post("/templates/{name}", s.handleRenderTemplate)
		r.Post("/badges", s.handleBadges)
		r.Post("/sections/{type}", s.handleSection)
		r.Post("/readme", s.handleReadme)
		r.Post("/render", s.handleRender)
	})

	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reload returns the live reload hub.
func (s *Server) Reload() *ReloadServer {
	return s.reload
}

// Addr returns the address the server listens on, once started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.options.Address
	}
	return s.listener.Addr().String()
}

// Start serves until ctx is done or the server fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	ln, err := net.Listen("tcp", s.options.Address)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.running = true
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Unlock()

	if s.watcher != nil {
		if err := s.watcher.Start(ctx); err != nil {
			s.Stop()
			return err
		}
	}

	s.logger.Info("preview server running", "url", "http://"+ln.Addr().String(), "watch", s.options.WatchFile)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	if s.watcher != nil {
		s.watcher.Stop()
	}
	s.reload.Close()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Warn("shutdown", "error", err)
		}
	}
}

// handleFileChange re-renders the watched file and tells browsers to reload,
// or shows the render error in their overlay.
func (s *Server) handleFileChange(path string) {
	if _, err := s.renderWatched(context.Background()); err != nil {
		s.logger.Warn("render failed", "path", path, "error", err)
		s.reload.NotifyError(err.Error())
		return
	}

	s.reload.ClearError()
	s.reload.NotifyReload(path)
	s.metrics.RecordReload()
	clients := s.reload.ClientCount()
	s.logger.Info("reloaded browsers", "path", path, "clients", clients)
	if s.options.OnReload != nil {
		s.options.OnReload(clients)
	}
}

// renderWatched renders the watched file as a full page.
func (s *Server) renderWatched(ctx context.Context) (string, error) {
	_, span := startSpan(ctx, "render.watched")
	data, err := os.ReadFile(s.options.WatchFile)
	if err != nil {
		endSpan(span, err)
		return "", err
	}
	body, err := preview.HTML(string(data))
	if err != nil {
		endSpan(span, err)
		return "", err
	}
	page, err := preview.Page(s.options.WatchFile, body, ClientScript)
	endSpan(span, err)
	return page, err
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
