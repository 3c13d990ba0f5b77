package health

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	health := router.Group("/health")
	health.GET("", ListHealthRecords)
	health.POST("", CreateHealthRecord)
}
