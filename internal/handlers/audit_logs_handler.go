package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/styllus/barber-site/internal/audit"
	"github.com/styllus/barber-site/internal/httpresp"
)

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	httpresp.List(c, h.logger.Recent(limit))
}
