package models

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type PointTransactionType string

const (
	PointTransactionPlanReward PointTransactionType = "plan_reward"
	PointTransactionUserRedeem PointTransactionType = "user_redeem"
)

// PointTransaction is one row of the point ledger. Every change to
// User.Points is written together with one of these.
type PointTransaction struct {
	ID            uint                 `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time            `gorm:"precision:3" json:"createdAt"`
	UserID        uint                 `gorm:"index;not null" json:"userId"`
	Amount        int                  `gorm:"not null" json:"amount"`
	BalanceBefore int                  `gorm:"not null" json:"balanceBefore"`
	BalanceAfter  int                  `gorm:"not null" json:"balanceAfter"`
	Type          PointTransactionType `gorm:"type:varchar(32);index;not null" json:"type"`
	Reason        string               `gorm:"type:text" json:"reason"`
	Detail        datatypes.JSON       `json:"detail,omitempty" swaggertype:"object"`
	Hash          string               `gorm:"type:varchar(64);default:''" json:"hash"`
}

func (PointTransaction) TableName() string {
	return "point_transactions"
}

// GenerateHash returns the HMAC-SHA256 of the ledger row, keyed with secret.
func (t *PointTransaction) GenerateHash(secret string) string {
	data := fmt.Sprintf("%d|%d|%d|%d|%d|%s|%s",
		t.UserID, t.CreatedAt.UnixNano(), t.Amount, t.BalanceBefore, t.BalanceAfter,
		t.Type, t.Reason)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
