package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// AlgorithmHandler serves algorithm execution endpoints.
type AlgorithmHandler struct {
	svc AlgorithmService
	log *logrus.Logger
}

// NewAlgorithmHandler creates an AlgorithmHandler with the given service and logger.
func NewAlgorithmHandler(svc AlgorithmService, log *logrus.Logger) *AlgorithmHandler {
	return &AlgorithmHandler{svc: svc, log: log}
}

// List handles GET /api/v1/algorithms.
func (h *AlgorithmHandler) List(c *gin.Context) {
	names := h.svc.Algorithms(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"algorithms": names})
}

// Run handles POST /api/v1/algorithms/run. A result with success=false is
// still HTTP 200: the request was valid, the graph just could not satisfy it
// (missing start node, no path). Only unknown algorithm names are 400s.
func (h *AlgorithmHandler) Run(c *gin.Context) {
	var req models.RunAlgorithmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	result, err := h.svc.RunAlgorithm(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrUnknownAlgorithm) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("running algorithm")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":    "algorithm.run",
		"algorithm": req.Algorithm,
		"success":   result.Success,
	}).Info("audit")

	c.JSON(http.StatusOK, result)
}
