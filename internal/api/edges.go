package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// EdgeHandler serves edge endpoints.
type EdgeHandler struct {
	svc EdgeService
	log *logrus.Logger
}

// NewEdgeHandler creates an EdgeHandler with the given service and logger.
func NewEdgeHandler(svc EdgeService, log *logrus.Logger) *EdgeHandler {
	return &EdgeHandler{svc: svc, log: log}
}

// List handles GET /api/v1/edges.
func (h *EdgeHandler) List(c *gin.Context) {
	edges, err := h.svc.ListEdges(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing edges")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"edges": edges, "count": len(edges)})
}

// Create handles POST /api/v1/edges.
func (h *EdgeHandler) Create(c *gin.Context) {
	var req models.CreateEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	edge, err := h.svc.CreateEdge(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNodeNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")
		case errors.Is(err, models.ErrSelfLoop):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, "self-loop edges are not allowed")
		default:
			h.log.WithError(err).Error("creating edge")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":    "edge.create",
		"source_id": edge.Source,
		"target_id": edge.Target,
	}).Info("audit")

	c.JSON(http.StatusCreated, edge)
}

// Delete handles DELETE /api/v1/edges/:source/:target.
func (h *EdgeHandler) Delete(c *gin.Context) {
	source, ok := pathID(c, "source")
	if !ok {
		return
	}

	target, ok := pathID(c, "target")
	if !ok {
		return
	}

	if err := h.svc.DeleteEdge(c.Request.Context(), source, target); err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge not found")

			return
		}

		h.log.WithError(err).Error("deleting edge")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":    "edge.delete",
		"source_id": source,
		"target_id": target,
	}).Info("audit")

	c.Status(http.StatusNoContent)
}
