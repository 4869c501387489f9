// Package server exposes the catalog query surface over HTTP: a JSON API,
// rendered article documents, and an RSS feed.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/heyosj/dispatch/internal/core/catalog"
	"github.com/heyosj/dispatch/internal/core/config"
	"github.com/heyosj/dispatch/internal/core/render"
)

// Server wires the catalogs and renderer behind a gin router.
type Server struct {
	cfg      *config.Config
	renderer *render.Renderer
	catalogs map[string]*catalog.Catalog
	log      zerolog.Logger
}

// New builds a server over the content root in cfg.
func New(cfg *config.Config) *Server {
	catalogs := make(map[string]*catalog.Catalog, len(catalog.Kinds))
	for _, k := range catalog.Kinds {
		catalogs[k.Name+"s"] = catalog.New(k, cfg.ContentDir)
	}

	return &Server{
		cfg:      cfg,
		renderer: render.New(cfg.Render.HighlightStyle),
		catalogs: catalogs,
		log:      log.With().Str("component", "server").Logger(),
	}
}

// Router configures all routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(s.requestLogger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/featured", s.handleFeatured)
		api.GET("/:kind", s.handleList)
		api.GET("/:kind/:slug", s.handleDoc)
	}

	r.GET("/rss.xml", s.handleFeed)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Serve.Addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
