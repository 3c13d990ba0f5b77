package services

import (
	"bodylover-backend/internal/database"
	"bodylover-backend/internal/models"
	"bodylover-backend/pkg/logger"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const statsWindowDays = 7

// DailyStat is one point of the weekly chart; Date is MM-DD.
type DailyStat struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ListPlansByDate returns the user's plans scheduled on date (today when
// empty), newest first.
func ListPlansByDate(userID uint, date string) ([]models.Plan, error) {
	day, err := resolveDate(date)
	if err != nil {
		return nil, err
	}

	plans := []models.Plan{}
	if err := database.DB.
		Where("user_id = ? AND scheduled_date = ?", userID, day).
		Order("created_at desc").Order("id desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// CreatePlan stores plan, scheduling it for today and marking it pending
// unless those were given.
func CreatePlan(plan *models.Plan) error {
	date, err := resolveDate(plan.ScheduledDate)
	if err != nil {
		return err
	}
	plan.ScheduledDate = date

	if plan.Status == "" {
		plan.Status = models.PlanStatusPending
	}

	return database.DB.Create(plan).Error
}

// PlanOwner returns the user a plan belongs to. found is false when no plan
// has that id.
func PlanOwner(planID uint) (ownerID uint, found bool, err error) {
	var plan models.Plan
	if err := database.DB.Select("id", "user_id").First(&plan, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return plan.UserID, true, nil
}

// PlanUpdate is the result of UpdatePlanStatus.
type PlanUpdate struct {
	Plan          *models.Plan
	PointsAwarded int
}

// UpdatePlanStatus sets the plan status. Completing a plan with actual
// minutes awards points to its owner in the same transaction. Completing
// an already completed plan awards again. A missing plan is not an error:
// the returned Plan is nil.
func UpdatePlanStatus(planID uint, status models.PlanStatus, actualMinutes *int) (*PlanUpdate, error) {
	update := &PlanUpdate{}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var plan models.Plan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&plan, planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if status != "" {
			plan.Status = status
		}

		if status == models.PlanStatusCompleted && actualMinutes != nil {
			minutes := *actualMinutes
			plan.ActualMinutes = &minutes

			points := CalculatePlanPoints(plan.ActivityCategory, minutes)
			if points > 0 {
				user, err := lockUser(tx, plan.UserID)
				if err != nil {
					return err
				}
				if _, err := adjustPointsTx(tx, user, points, PointEntry{
					Type:   models.PointTransactionPlanReward,
					Reason: fmt.Sprintf("Completed plan #%d", plan.ID),
					Detail: map[string]interface{}{
						"plan_id":  plan.ID,
						"category": plan.ActivityCategory,
						"minutes":  minutes,
					},
				}); err != nil {
					return err
				}
				update.PointsAwarded = points
			}
		}

		if err := tx.Save(&plan).Error; err != nil {
			return err
		}
		update.Plan = &plan
		return nil
	})
	if err != nil {
		return nil, err
	}

	if update.Plan != nil && update.PointsAwarded > 0 {
		invalidateUserCache(update.Plan.UserID)
		logger.Log.Info("Plan points awarded",
			zap.Uint("plan_id", update.Plan.ID),
			zap.Uint("user_id", update.Plan.UserID),
			zap.String("category", update.Plan.ActivityCategory),
			zap.Int("points", update.PointsAwarded),
		)
	}

	return update, nil
}

// WeeklyStats totals the hours of completed plans for each of the last seven
// days, today included, oldest first. Days without plans are reported as 0.
func WeeklyStats(userID uint) ([]DailyStat, error) {
	now := nowFunc()
	end := now.Format(models.DateLayout)
	start := now.AddDate(0, 0, -(statsWindowDays - 1)).Format(models.DateLayout)

	var plans []models.Plan
	if err := database.DB.
		Where("user_id = ? AND status = ? AND scheduled_date >= ? AND scheduled_date <= ?",
			userID, models.PlanStatusCompleted, start, end).
		Find(&plans).Error; err != nil {
		return nil, err
	}

	hours := make(map[string]float64, statsWindowDays)
	for i := range plans {
		hours[plans[i].ScheduledDate] += plans[i].Hours()
	}

	stats := make([]DailyStat, 0, statsWindowDays)
	for i := statsWindowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		stats = append(stats, DailyStat{
			Date:  day.Format("01-02"),
			Value: hours[day.Format(models.DateLayout)],
		})
	}
	return stats, nil
}
