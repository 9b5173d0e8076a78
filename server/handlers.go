package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mohithgowdak/ninexta/catalog"
	"github.com/mohithgowdak/ninexta/search"
)

// agentResponse is the wire shape for an agent. Ratings are rounded to
// one decimal at this boundary only; stored values keep full precision.
type agentResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	LongDescription string           `json:"longDescription,omitempty"`
	Capabilities    []string         `json:"capabilities"`
	Instructions    string           `json:"instructions,omitempty"`
	Examples        []string         `json:"examples,omitempty"`
	Pricing         string           `json:"pricing,omitempty"`
	ImageURL        string           `json:"imageUrl,omitempty"`
	Rating          float64          `json:"rating"`
	Reviews         []catalog.Review `json:"reviews"`
	Categories      []string         `json:"categories"`
}

func toResponse(a catalog.Agent) agentResponse {
	return agentResponse{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		LongDescription: a.LongDescription,
		Capabilities:    a.Capabilities,
		Instructions:    a.Instructions,
		Examples:        a.Examples,
		Pricing:         a.Pricing,
		ImageURL:        a.ImageURL,
		Rating:          math.Round(a.Rating*10) / 10,
		Reviews:         a.Reviews,
		Categories:      a.Categories,
	}
}

func toResponses(agents []catalog.Agent) []agentResponse {
	out := make([]agentResponse, len(agents))
	for i, a := range agents {
		out[i] = toResponse(a)
	}
	return out
}

func (s *Server) listAgents(c *gin.Context) {
	c.JSON(http.StatusOK, toResponses(s.store.Agents()))
}

func (s *Server) getAgent(c *gin.Context) {
	a, err := s.store.Agent(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(a))
}

func (s *Server) searchAgents(c *gin.Context) {
	query := c.Query("q")

	var filters search.Filters
	filters.Category = c.Query("category")
	if v := c.Query("min_rating"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil || min < 0 || min > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		filters.MinRating = min
	}

	start := time.Now()
	results := s.searcher.Search(c.Request.Context(), query, s.store.Agents())
	results = search.Apply(results, filters)
	s.logger.Info("search served",
		"query", query, "result_count", len(results), "duration", time.Since(start))

	c.JSON(http.StatusOK, toResponses(results))
}

// Validation of rating range and comment content happens in the catalog
// store so the HTTP layer and any other caller reject identically.
type reviewRequest struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (s *Server) submitReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := s.store.AddReview(c.Param("id"), req.Author, req.Rating, req.Comment)
	if err != nil {
		var invalid *catalog.InvalidReviewError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		case errors.Is(err, catalog.ErrAgentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, toResponse(a))
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Categories())
}
