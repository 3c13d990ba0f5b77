package health

import (
	"bodylover-backend/internal/api/v1/common"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/services"
	"bodylover-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListHealthRecords godoc
// @Summary List health records
// @Description All height/weight records of a user, latest first
// @Tags health
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {object} utils.Response{data=[]HealthRecordResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /health [get]
func ListHealthRecords(c *gin.Context) {
	userID, ok := utils.QueryUint(c, "userId")
	if !ok || !common.AuthorizeUser(c, userID) {
		return
	}

	records, err := services.ListHealthRecords(userID)
	if err != nil {
		common.RespondError(c, err, "list health records")
		return
	}

	resp := make([]HealthRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, newHealthRecordResponse(r))
	}
	utils.OK(c, "", resp)
}

// CreateHealthRecord godoc
// @Summary Add a health record
// @Description Store height (cm) and weight (kg). BMI is computed when both are given.
// @Tags health
// @Accept json
// @Produce json
// @Param input body CreateHealthRecordInput true "Record"
// @Success 200 {object} utils.Response{data=HealthRecordResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /health [post]
func CreateHealthRecord(c *gin.Context) {
	var input CreateHealthRecordInput
	if !utils.BindAndValidate(c, &input) || !common.AuthorizeUser(c, input.UserID) {
		return
	}

	record := &models.HealthRecord{
		UserID:     input.UserID,
		Height:     input.Height,
		Weight:     input.Weight,
		RecordDate: input.RecordDate,
	}
	if err := services.AddHealthRecord(record); err != nil {
		common.RespondError(c, err, "save health record")
		return
	}

	utils.OK(c, "Health record saved", newHealthRecordResponse(*record))
}
