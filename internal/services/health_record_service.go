package services

import (
	"bodylover-backend/internal/database"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/utils"
)

// ListHealthRecords returns the user's records, latest id first.
func ListHealthRecords(userID uint) ([]models.HealthRecord, error) {
	records := []models.HealthRecord{}
	if err := database.DB.Where("user_id = ?", userID).Order("id desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// AddHealthRecord fills in BMI when height and weight are both given and
// defaults the record date to today, then stores the record.
func AddHealthRecord(record *models.HealthRecord) error {
	record.BMI = nil
	if record.Height != nil && record.Weight != nil {
		if bmi, ok := utils.CalculateBMI(*record.Height, *record.Weight); ok {
			record.BMI = &bmi
		}
	}

	date, err := resolveDate(record.RecordDate)
	if err != nil {
		return err
	}
	record.RecordDate = date

	return database.DB.Create(record).Error
}
