// Package server serves the live portfolio preview over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/folio/internal/export"
	"github.com/thenoetrevino/folio/internal/models"
)

const shutdownTimeout = 5 * time.Second

// snapshotter is the read side of the session store
type snapshotter interface {
	Snapshot() models.Portfolio
}

// Server renders the current snapshot on every request
type Server struct {
	store  snapshotter
	router *gin.Engine
	now    func() time.Time
}

// New creates a server reading from store
func New(store snapshotter) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	// Read-only routes, so any page may fetch the JSON export
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodHead},
		MaxAge:          12 * time.Hour,
	}))

	s := &Server{
		store:  store,
		router: router,
		now:    time.Now,
	}

	router.GET("/", s.handleHTML)
	router.GET("/portfolio.json", s.handleJSON)
	router.GET("/healthz", s.handleHealth)

	return s
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("preview server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("preview server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("preview server shutdown: %w", err)
	}
	slog.Info("preview server stopped")
	return nil
}

func (s *Server) handleHTML(c *gin.Context) {
	body, err := export.ToHTML(s.store.Snapshot(), s.now().Year())
	if err != nil {
		slog.Error("failed to render preview", "error", err)
		c.String(http.StatusInternalServerError, "failed to render preview")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func (s *Server) handleJSON(c *gin.Context) {
	body, err := export.ToJSON(s.store.Snapshot())
	if err != nil {
		slog.Error("failed to encode portfolio", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode portfolio"})
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+models.JSONExportFilename+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
