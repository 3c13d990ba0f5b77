package models

import "time"

// HealthRecord is a height/weight snapshot. BMI is fixed when the record is
// written and never recomputed.
type HealthRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     uint      `gorm:"index;not null" json:"userId"`
	Height     *float64  `gorm:"type:decimal(6,2)" json:"height"`
	Weight     *float64  `gorm:"type:decimal(6,2)" json:"weight"`
	BMI        *float64  `gorm:"column:bmi;type:decimal(6,2)" json:"bmi"`
	RecordDate string    `gorm:"type:varchar(10);index" json:"recordDate"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}
