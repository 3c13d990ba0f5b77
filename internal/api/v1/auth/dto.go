package auth

import (
	"bodylover-backend/internal/models"
	"time"
)

type RegisterInput struct {
	AccountID string      `json:"accountId" binding:"required,max=64"`
	Username  string      `json:"username" binding:"max=64"`
	Password  string      `json:"password" binding:"required"`
	Mode      models.Mode `json:"mode" binding:"omitempty,oneof=TEENAGER ADULT SENIOR"`
	Age       int         `json:"age" binding:"min=0"`
	Points    int         `json:"points" binding:"min=0"`
}

// LoginInput accepts the login id as accountId, or as username for older clients.
type LoginInput struct {
	AccountID string `json:"accountId"`
	Username  string `json:"username"`
	Password  string `json:"password" binding:"required"`
}

func (in LoginInput) loginID() string {
	if in.AccountID != "" {
		return in.AccountID
	}
	return in.Username
}

// UserResponse is the user as returned by register and login.
type UserResponse struct {
	ID        uint        `json:"id"`
	AccountID string      `json:"accountId"`
	Username  string      `json:"username"`
	Mode      models.Mode `json:"mode"`
	Age       int         `json:"age"`
	Points    int         `json:"points"`
	CreatedAt time.Time   `json:"createdAt"`
	Token     string      `json:"token"`
}

func newUserResponse(u *models.User, token string) UserResponse {
	return UserResponse{
		ID:        u.ID,
		AccountID: u.AccountID,
		Username:  u.Username,
		Mode:      u.Mode,
		Age:       u.Age,
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
		Token:     token,
	}
}
