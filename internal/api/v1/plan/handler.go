package plan

import (
	"bodylover-backend/internal/api/v1/common"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/services"
	"bodylover-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListPlans godoc
// @Summary List plans of a day
// @Tags plan
// @Produce json
// @Param userId query int true "User ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} utils.Response{data=[]models.Plan}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /plans [get]
func ListPlans(c *gin.Context) {
	userID, ok := utils.QueryUint(c, "userId")
	if !ok || !common.AuthorizeUser(c, userID) {
		return
	}

	plans, err := services.ListPlansByDate(userID, c.Query("date"))
	if err != nil {
		common.RespondError(c, err, "list plans")
		return
	}

	utils.OK(c, "", plans)
}

// CreatePlan godoc
// @Summary Create a plan
// @Description New plans are PENDING and scheduled for today unless a date is given
// @Tags plan
// @Accept json
// @Produce json
// @Param input body CreatePlanInput true "Plan"
// @Success 200 {object} utils.Response{data=models.Plan}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /plans [post]
func CreatePlan(c *gin.Context) {
	var input CreatePlanInput
	if !utils.BindAndValidate(c, &input) || !common.AuthorizeUser(c, input.UserID) {
		return
	}

	plan := &models.Plan{
		UserID:           input.UserID,
		Title:            input.Title,
		Content:          input.Content,
		DurationHours:    input.DurationHours,
		ActivityCategory: input.ActivityCategory,
		PlanType:         input.PlanType,
		ScheduledDate:    input.ScheduledDate,
	}
	if err := services.CreatePlan(plan); err != nil {
		common.RespondError(c, err, "create plan")
		return
	}

	utils.OK(c, "Plan created", plan)
}

// UpdatePlanStatus godoc
// @Summary Update plan status
// @Description Completing a plan with actualMinutes awards points to its owner. Unknown ids are ignored.
// @Tags plan
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param input body UpdatePlanStatusInput true "Status"
// @Success 200 {object} utils.Response{data=UpdatePlanStatusResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /plans/{id} [put]
func UpdatePlanStatus(c *gin.Context) {
	id, ok := utils.ParamUint(c, "id")
	if !ok {
		return
	}

	var input UpdatePlanStatusInput
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if !common.AuthorizeOwner(c, func() (uint, bool, error) { return services.PlanOwner(id) }, "load plan") {
		return
	}

	update, err := services.UpdatePlanStatus(id, input.Status, input.ActualMinutes)
	if err != nil {
		common.RespondError(c, err, "update plan")
		return
	}
	if update.Plan == nil {
		utils.OK(c, "Plan updated", nil)
		return
	}

	utils.OK(c, "Plan updated", UpdatePlanStatusResponse{
		Plan:          update.Plan,
		PointsAwarded: update.PointsAwarded,
	})
}

// WeeklyStats godoc
// @Summary Weekly activity
// @Description Hours of completed plans for each of the last seven days, oldest first
// @Tags plan
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {object} utils.Response{data=[]services.DailyStat}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /plans/stats [get]
func WeeklyStats(c *gin.Context) {
	userID, ok := utils.QueryUint(c, "userId")
	if !ok || !common.AuthorizeUser(c, userID) {
		return
	}

	stats, err := services.WeeklyStats(userID)
	if err != nil {
		common.RespondError(c, err, "load stats")
		return
	}

	utils.OK(c, "", stats)
}
