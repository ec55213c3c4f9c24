package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// GraphHandler serves whole-graph query and mutation endpoints.
type GraphHandler struct {
	svc GraphService
	log *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given service and logger.
func NewGraphHandler(svc GraphService, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{svc: svc, log: log}
}

// Neighbors handles GET /api/v1/graph/neighbors/:id.
func (h *GraphHandler) Neighbors(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	neighbors, err := h.svc.Neighbors(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("getting neighbors")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"node_id": id, "neighbors": neighbors, "count": len(neighbors)})
}

// AdjacencyList handles GET /api/v1/graph/adjacency.
func (h *GraphHandler) AdjacencyList(c *gin.Context) {
	adjacency, err := h.svc.AdjacencyList(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("getting adjacency list")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"adjacency": adjacency})
}

// AdjacencyMatrix handles GET /api/v1/graph/matrix.
func (h *GraphHandler) AdjacencyMatrix(c *gin.Context) {
	matrix, err := h.svc.AdjacencyMatrix(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("getting adjacency matrix")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, matrix)
}

// Similarity handles GET /api/v1/graph/similarity/:a/:b.
func (h *GraphHandler) Similarity(c *gin.Context) {
	a, ok := pathID(c, "a")
	if !ok {
		return
	}

	b, ok := pathID(c, "b")
	if !ok {
		return
	}

	result, err := h.svc.Similarity(c.Request.Context(), a, b)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("computing similarity")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateRandom handles POST /api/v1/graph/random.
func (h *GraphHandler) GenerateRandom(c *gin.Context) {
	var req models.RandomGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	stats, err := h.svc.GenerateRandom(c.Request.Context(), req)
	if err != nil {
		h.log.WithError(err).Error("generating random graph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "graph.random", "nodes": stats.NodeCount}).Info("audit")

	c.JSON(http.StatusCreated, stats)
}

// Clear handles DELETE /api/v1/graph.
func (h *GraphHandler) Clear(c *gin.Context) {
	if err := h.svc.ClearGraph(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("clearing graph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithField("action", "graph.clear").Info("audit")

	c.Status(http.StatusNoContent)
}

// ClearHighlights handles DELETE /api/v1/graph/highlights.
func (h *GraphHandler) ClearHighlights(c *gin.Context) {
	if err := h.svc.ClearHighlights(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("clearing highlights")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Status(http.StatusNoContent)
}
