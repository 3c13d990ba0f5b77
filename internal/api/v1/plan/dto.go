package plan

import "bodylover-backend/internal/models"

type CreatePlanInput struct {
	UserID           uint            `json:"userId" binding:"required"`
	Title            string          `json:"title" binding:"max=255"`
	Content          string          `json:"content"`
	DurationHours    *float64        `json:"durationHours" binding:"omitempty,min=0"`
	ActivityCategory string          `json:"activityCategory" binding:"max=32"`
	PlanType         models.PlanType `json:"planType" binding:"omitempty,oneof=EXERCISE DIET"`
	ScheduledDate    string          `json:"scheduledDate"`
}

type UpdatePlanStatusInput struct {
	Status        models.PlanStatus `json:"status" binding:"omitempty,oneof=PENDING COMPLETED"`
	ActualMinutes *int              `json:"actualMinutes" binding:"omitempty,min=0"`
}

type UpdatePlanStatusResponse struct {
	Plan          *models.Plan `json:"plan"`
	PointsAwarded int          `json:"pointsAwarded"`
}
