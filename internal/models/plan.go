package models

import "time"

type PlanType string

const (
	PlanTypeExercise PlanType = "EXERCISE"
	PlanTypeDiet     PlanType = "DIET"
)

type PlanStatus string

const (
	PlanStatusPending   PlanStatus = "PENDING"
	PlanStatusCompleted PlanStatus = "COMPLETED"
)

// DateLayout is how calendar dates are stored and exchanged.
const DateLayout = "2006-01-02"

type Plan struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	CreatedAt        time.Time  `json:"createdAt"`
	UserID           uint       `gorm:"not null;index:idx_plans_user_date,priority:1" json:"userId"`
	Title            string     `gorm:"type:varchar(255)" json:"title"`
	Content          string     `gorm:"type:text" json:"content"`
	DurationHours    *float64   `gorm:"type:decimal(5,2)" json:"durationHours"`
	ActualMinutes    *int       `json:"actualMinutes"`
	ActivityCategory string     `gorm:"type:varchar(32)" json:"activityCategory"`
	PlanType         PlanType   `gorm:"type:varchar(16)" json:"planType"`
	Status           PlanStatus `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	ScheduledDate    string     `gorm:"type:varchar(10);index:idx_plans_user_date,priority:2" json:"scheduledDate"`
}

func (Plan) TableName() string {
	return "plans"
}

// Hours is the time credited to a completed plan: the logged minutes when
// present, otherwise the planned duration.
func (p *Plan) Hours() float64 {
	if p.ActualMinutes != nil {
		return float64(*p.ActualMinutes) / 60.0
	}
	if p.DurationHours != nil {
		return *p.DurationHours
	}
	return 0
}
