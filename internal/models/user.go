package models

import "time"

// Mode is the age bracket a user picked at registration. The client uses it to
// choose which activity categories to offer; the server does not enforce it.
type Mode string

const (
	ModeTeenager Mode = "TEENAGER"
	ModeAdult    Mode = "ADULT"
	ModeSenior   Mode = "SENIOR"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	AccountID string    `gorm:"column:account_id;type:varchar(64);uniqueIndex;not null" json:"accountId"`
	Username  string    `gorm:"type:varchar(64)" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Mode      Mode      `gorm:"type:varchar(16)" json:"mode"`
	Age       int       `json:"age"`
	Points    int       `gorm:"not null;default:0" json:"points"`
	Version   int       `gorm:"default:1" json:"version"`
}
