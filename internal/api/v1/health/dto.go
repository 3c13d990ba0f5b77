package health

import (
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/utils"
)

type CreateHealthRecordInput struct {
	UserID     uint     `json:"userId" binding:"required"`
	Height     *float64 `json:"height" binding:"omitempty,gt=0"`
	Weight     *float64 `json:"weight" binding:"omitempty,gt=0"`
	RecordDate string   `json:"recordDate"`
}

// HealthRecordResponse adds the BMI category, which is derived and not stored.
type HealthRecordResponse struct {
	models.HealthRecord
	BMICategory string `json:"bmiCategory,omitempty"`
}

func newHealthRecordResponse(r models.HealthRecord) HealthRecordResponse {
	resp := HealthRecordResponse{HealthRecord: r}
	if r.BMI != nil {
		resp.BMICategory = utils.BMICategory(*r.BMI)
	}
	return resp
}
