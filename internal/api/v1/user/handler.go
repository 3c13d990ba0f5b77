package user

import (
	"bodylover-backend/internal/api/v1/common"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/services"
	"bodylover-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// GetUser godoc
// @Summary Get a user
// @Description Profile and current point balance
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.Response{data=models.User}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /user/{id} [get]
func GetUser(c *gin.Context) {
	id, ok := utils.ParamUint(c, "id")
	if !ok || !common.AuthorizeUser(c, id) {
		return
	}

	u, err := services.FindUserByID(id)
	if err != nil {
		common.RespondError(c, err, "load user")
		return
	}

	utils.OK(c, "", u)
}

// DeductPoints godoc
// @Summary Spend points
// @Description Deduct points from a user. Fails without touching the balance when it is too low.
// @Tags user
// @Accept json
// @Produce json
// @Param input body DeductPointsInput true "Deduction"
// @Success 200 {object} utils.Response{data=DeductPointsResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /user/points/deduct [post]
func DeductPoints(c *gin.Context) {
	var input DeductPointsInput
	if !utils.BindAndValidate(c, &input) || !common.AuthorizeUser(c, input.UserID) {
		return
	}

	balance, err := services.DeductPoints(input.UserID, input.Points)
	if err != nil {
		common.RespondError(c, err, "deduct points")
		return
	}

	utils.OK(c, "Points deducted", DeductPointsResponse{CurrentPoints: balance})
}

// ListPointTransactions godoc
// @Summary List point history
// @Description Paginated point ledger of a user, newest first
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param type query string false "plan_reward or user_redeem"
// @Success 200 {object} utils.Response{data=PointTransactionListResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /user/{id}/points/transactions [get]
func ListPointTransactions(c *gin.Context) {
	id, ok := utils.ParamUint(c, "id")
	if !ok || !common.AuthorizeUser(c, id) {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.Fail(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > maxPageSize {
		utils.Fail(c, http.StatusBadRequest, "Invalid limit number")
		return
	}

	filter := services.PointTransactionFilter{UserID: id, Page: page, Limit: limit}
	if typeStr := c.Query("type"); typeStr != "" {
		txType := models.PointTransactionType(typeStr)
		filter.Type = &txType
	}

	transactions, total, err := services.FindPointTransactions(filter)
	if err != nil {
		common.RespondError(c, err, "list point transactions")
		return
	}
	if transactions == nil {
		transactions = []models.PointTransaction{}
	}

	utils.OK(c, "", PointTransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Page:         page,
		Limit:        limit,
	})
}
