package common

import (
	"bodylover-backend/internal/middleware"
	"bodylover-backend/internal/services"
	"bodylover-backend/internal/utils"
	"bodylover-backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondError answers every service failure with a 400 carrying its message.
// Failures other than the domain errors are logged; action names the failed
// step in the log line.
func RespondError(c *gin.Context, err error, action string) {
	if !services.IsDomainError(err) {
		logger.Log.Error("Failed to "+action,
			zap.Error(err),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		)
		_ = c.Error(err)
	}
	utils.Fail(c, http.StatusBadRequest, err.Error())
}
