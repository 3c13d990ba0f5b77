package user

import "bodylover-backend/internal/models"

type DeductPointsInput struct {
	UserID uint `json:"userId" binding:"required"`
	Points int  `json:"points" binding:"required,gt=0"`
}

type DeductPointsResponse struct {
	CurrentPoints int `json:"currentPoints"`
}

// PointTransactionListResponse is one page of the point ledger.
type PointTransactionListResponse struct {
	Transactions []models.PointTransaction `json:"transactions"`
	Total        int64                     `json:"total"`
	Page         int                       `json:"page"`
	Limit        int                       `json:"limit"`
}
