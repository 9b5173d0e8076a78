// Package server exposes the directory over HTTP for browser frontends:
// agent listing and detail, the search pipeline, the category facet and
// review submission. It owns presentation concerns only; all domain
// behavior lives in catalog, search and ranker.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/mohithgowdak/ninexta/catalog"
	"github.com/mohithgowdak/ninexta/logging"
	"github.com/mohithgowdak/ninexta/search"
)

// Options configure the HTTP server.
type Options struct {
	Logger logging.Logger
	// CORSOrigins lists allowed origins; ["*"] allows any.
	CORSOrigins []string
}

// Server binds the catalog store and the search pipeline to HTTP routes.
type Server struct {
	store    catalog.Store
	searcher *search.Searcher
	logger   logging.Logger
	origins  []string
}

// New creates a Server over the given store and searcher.
func New(store catalog.Store, searcher *search.Searcher, optFns ...func(o *Options)) *Server {
	opts := Options{
		Logger:      logging.NoOpLogger{},
		CORSOrigins: []string{"*"},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Server{store: store, searcher: searcher, logger: opts.Logger, origins: opts.CORSOrigins}
}

// Routes builds the gin engine with all API routes registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/agents", s.listAgents)
	api.GET("/agents/:id", s.getAgent)
	api.POST("/agents/:id/reviews", s.submitReview)
	api.GET("/search", s.searchAgents)
	api.GET("/categories", s.listCategories)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	return r
}

// Handler wraps the routes with CORS for browser consumption.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.Routes())
}
