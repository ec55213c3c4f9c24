package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/layout"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// LayoutHandler serves layout solver control endpoints.
type LayoutHandler struct {
	svc LayoutService
	log *logrus.Logger
}

// NewLayoutHandler creates a LayoutHandler with the given service and logger.
func NewLayoutHandler(svc LayoutService, log *logrus.Logger) *LayoutHandler {
	return &LayoutHandler{svc: svc, log: log}
}

// Start handles POST /api/v1/layout/start.
func (h *LayoutHandler) Start(c *gin.Context) {
	if err := h.svc.StartLayout(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("starting layout")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "running"})
}

// Stop handles POST /api/v1/layout/stop.
func (h *LayoutHandler) Stop(c *gin.Context) {
	if err := h.svc.StopLayout(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("stopping layout")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "stopped"})
}

// Reset handles POST /api/v1/layout/reset.
func (h *LayoutHandler) Reset(c *gin.Context) {
	if err := h.svc.ResetLayout(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("resetting layout")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// Reheat handles POST /api/v1/layout/reheat.
func (h *LayoutHandler) Reheat(c *gin.Context) {
	if err := h.svc.ReheatLayout(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("reheating layout")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reheated"})
}

// stepRequest is the payload for a synchronous layout step.
type stepRequest struct {
	Iterations int `json:"iterations"`
}

// Step handles POST /api/v1/layout/step.
func (h *LayoutHandler) Step(c *gin.Context) {
	// An empty body means "use the configured iteration budget".
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	steps, err := h.svc.StepLayout(c.Request.Context(), req.Iterations)
	if err != nil {
		if errors.Is(err, models.ErrLayoutRunning) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "layout is already running")

			return
		}

		h.log.WithError(err).Error("stepping layout")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

// layoutParamsResponse pairs the solver configuration with its run state.
type layoutParamsResponse struct {
	Params  layout.Config `json:"params"`
	Running bool          `json:"running"`
}

// GetParams handles GET /api/v1/layout/params.
func (h *LayoutHandler) GetParams(c *gin.Context) {
	cfg, running, err := h.svc.LayoutParams(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("getting layout params")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, layoutParamsResponse{Params: cfg, Running: running})
}

// SetParams handles PUT /api/v1/layout/params. Zero fields leave the current
// setting unchanged.
func (h *LayoutHandler) SetParams(c *gin.Context) {
	var req layout.Config
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	cfg, err := h.svc.SetLayoutParams(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":     "layout.params",
		"repulsion":  cfg.Repulsion,
		"attraction": cfg.Attraction,
		"damping":    cfg.Damping,
	}).Info("audit")

	c.JSON(http.StatusOK, layoutParamsResponse{Params: cfg})
}
