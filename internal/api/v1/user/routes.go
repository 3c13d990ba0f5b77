package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.GET("/:id", GetUser)
	user.GET("/:id/points/transactions", ListPointTransactions)
	user.POST("/points/deduct", DeductPoints)
}
