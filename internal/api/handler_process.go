package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mailtriage/internal/model"
	"mailtriage/internal/service"
	"mailtriage/pkg/logger"
)

type ProcessHandler struct {
	pipeline *service.Pipeline
	logger   *zap.Logger
}

func NewProcessHandler(pipeline *service.Pipeline, log *zap.Logger) *ProcessHandler {
	return &ProcessHandler{
		pipeline: pipeline,
		logger:   log,
	}
}

// ProcessBatch handles POST /v1/emails/process
func (h *ProcessHandler) ProcessBatch(c *gin.Context) {
	var req struct {
		Emails []model.RawEmail `json:"emails"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()
	log := logger.WithTrace(ctx, h.logger)
	log.Info("Processing email batch", zap.Int("batch_size", len(req.Emails)))

	results := h.pipeline.ProcessBatch(ctx, req.Emails)

	c.JSON(http.StatusOK, gin.H{
		"results": results,
	})
}
