package services

import (
	"bodylover-backend/internal/database"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/utils"
	"bodylover-backend/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const userCacheTTL = time.Hour

func userCacheKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func FindUserByID(userID uint) (models.User, error) {
	// Try cache
	cacheKey := userCacheKey(userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}

	// Set cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, userCacheTTL)
		}
	}

	return user, nil
}

func invalidateUserCache(userID uint) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, userCacheKey(userID))
	}
}

// PointEntry describes why a point change happened; it becomes the ledger row.
type PointEntry struct {
	Type   models.PointTransactionType
	Reason string
	Detail map[string]interface{}
}

// AdjustPoints adds delta (positive or negative) to the user's balance and
// records it in the ledger. It enforces no floor; callers spending points
// check the balance first, as DeductPoints does.
func AdjustPoints(userID uint, delta int, entry PointEntry) (*models.User, error) {
	var updated *models.User
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		updated, err = adjustPointsTx(tx, user, delta, entry)
		return err
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(userID)
	return updated, nil
}

// DeductPoints spends amount points and returns the remaining balance. The
// balance is left untouched when it does not cover amount.
func DeductPoints(userID uint, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var balance int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		if amount > user.Points {
			return ErrInsufficientBalance
		}

		updated, err := adjustPointsTx(tx, user, -amount, PointEntry{
			Type:   models.PointTransactionUserRedeem,
			Reason: fmt.Sprintf("Redeemed %d points", amount),
		})
		if err != nil {
			return err
		}
		balance = updated.Points
		return nil
	})
	if err != nil {
		return 0, err
	}

	invalidateUserCache(userID)
	logger.Log.Info("Points deducted",
		zap.Uint("user_id", userID),
		zap.Int("amount", amount),
		zap.Int("balance", balance),
	)
	return balance, nil
}

// lockUser loads the user row for update. sqlite ignores the lock clause.
func lockUser(tx *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// adjustPointsTx applies delta to a user already locked in tx, guarded by
// the version column, and writes the ledger row.
func adjustPointsTx(tx *gorm.DB, user *models.User, delta int, entry PointEntry) (*models.User, error) {
	secret, err := utils.SigningSecret()
	if err != nil {
		return nil, fmt.Errorf("load ledger secret: %w", err)
	}

	balanceBefore := user.Points
	currentVersion := user.Version

	result := tx.Model(&models.User{}).
		Where("id = ? AND version = ?", user.ID, currentVersion).
		Updates(map[string]interface{}{
			"points":  gorm.Expr("points + ?", delta),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrOptimisticLock
	}

	ledger := models.PointTransaction{
		CreatedAt:     time.Now().Truncate(time.Millisecond),
		UserID:        user.ID,
		Amount:        delta,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceBefore + delta,
		Type:          entry.Type,
		Reason:        entry.Reason,
	}
	if entry.Detail != nil {
		raw, err := json.Marshal(entry.Detail)
		if err != nil {
			return nil, err
		}
		ledger.Detail = datatypes.JSON(raw)
	}
	ledger.Hash = ledger.GenerateHash(secret)

	if err := tx.Create(&ledger).Error; err != nil {
		return nil, err
	}

	updated := *user
	updated.Points = ledger.BalanceAfter
	updated.Version = currentVersion + 1
	return &updated, nil
}

// PointTransactionFilter narrows the ledger listing.
type PointTransactionFilter struct {
	UserID uint
	Type   *models.PointTransactionType
	Page   int
	Limit  int
}

// FindPointTransactions returns one page of a user's ledger, newest first.
func FindPointTransactions(filter PointTransactionFilter) ([]models.PointTransaction, int64, error) {
	var transactions []models.PointTransaction
	var total int64

	query := database.DB.Model(&models.PointTransaction{}).Where("user_id = ?", filter.UserID)
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Order("id desc").Limit(filter.Limit).Offset(offset).Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}
