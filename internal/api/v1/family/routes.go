package family

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	family := router.Group("/family")
	family.POST("/request", SendRequest)
	family.PUT("/request/:id", HandleRequest)
	family.GET("/requests", PendingRequests)
	family.GET("/members", Members)
}
