package services

import (
	"bodylover-backend/internal/database"
	"bodylover-backend/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUserByIDUsesCache(t *testing.T) {
	mr := setupTestDB(t)
	user := createUser(t, "cached", 7)

	found, err := FindUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "cached", found.AccountID)
	assert.True(t, mr.Exists(userCacheKey(user.ID)))

	// a write behind the cache's back is not seen until invalidation
	require.NoError(t, database.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("age", 99).Error)
	found, err = FindUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, found.Age)

	invalidateUserCache(user.ID)
	found, err = FindUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 99, found.Age)

	_, err = FindUserByID(12345)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeductPoints(t *testing.T) {
	mr := setupTestDB(t)
	user := createUser(t, "spender", 50)

	_, err := DeductPoints(user.ID, 60)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	reloaded, err := FindUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, reloaded.Points)

	balance, err := DeductPoints(user.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 30, balance)
	assert.False(t, mr.Exists(userCacheKey(user.ID)))

	balance, err = DeductPoints(user.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)

	_, err = DeductPoints(user.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = DeductPoints(user.ID, -3)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = DeductPoints(999, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAdjustPointsWritesLedger(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "ledger", 10)

	updated, err := AdjustPoints(user.ID, 15, PointEntry{
		Type:   models.PointTransactionPlanReward,
		Reason: "bonus",
	})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Points)
	assert.Equal(t, 2, updated.Version)

	var ledger models.PointTransaction
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&ledger).Error)
	assert.Equal(t, 10, ledger.BalanceBefore)
	assert.Equal(t, 25, ledger.BalanceAfter)
	assert.Equal(t, "bonus", ledger.Reason)
	assert.NotEmpty(t, ledger.Hash)
}

func TestAdjustPointsVersionGuard(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "racer", 10)

	stale := *user
	require.NoError(t, database.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("version", 5).Error)

	_, err := adjustPointsTx(database.DB, &stale, 5, PointEntry{Type: models.PointTransactionPlanReward})
	assert.ErrorIs(t, err, ErrOptimisticLock)
}

func TestFindPointTransactions(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "history", 100)

	for i := 1; i <= 3; i++ {
		_, err := DeductPoints(user.ID, i)
		require.NoError(t, err)
	}
	_, err := AdjustPoints(user.ID, 4, PointEntry{Type: models.PointTransactionPlanReward, Reason: "run"})
	require.NoError(t, err)

	page, total, err := FindPointTransactions(PointTransactionFilter{UserID: user.ID, Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, page, 2)
	assert.Equal(t, 4, page[0].Amount)
	assert.Equal(t, -3, page[1].Amount)

	redeem := models.PointTransactionUserRedeem
	page, total, err = FindPointTransactions(PointTransactionFilter{UserID: user.ID, Type: &redeem, Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, -1, page[0].Amount)
}

func TestAddHealthRecord(t *testing.T) {
	setupTestDB(t)
	pinToday(t, "2024-05-20")
	user := createUser(t, "healthy", 0)

	record := &models.HealthRecord{UserID: user.ID, Height: ptrFloat(180), Weight: ptrFloat(75)}
	require.NoError(t, AddHealthRecord(record))
	require.NotNil(t, record.BMI)
	assert.Equal(t, 23.15, *record.BMI)
	assert.Equal(t, "2024-05-20", record.RecordDate)

	// a supplied BMI is never trusted
	partial := &models.HealthRecord{UserID: user.ID, Weight: ptrFloat(70), BMI: ptrFloat(10), RecordDate: "2024-05-01"}
	require.NoError(t, AddHealthRecord(partial))
	assert.Nil(t, partial.BMI)
	assert.Equal(t, "2024-05-01", partial.RecordDate)

	err := AddHealthRecord(&models.HealthRecord{UserID: user.ID, RecordDate: "yesterday"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	records, err := ListHealthRecords(user.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, partial.ID, records[0].ID)
	assert.Equal(t, record.ID, records[1].ID)

	records, err = ListHealthRecords(999)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLedgerHashUsesConfiguredSecret(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "ledger-key")
	user := createUser(t, "signed", 10)

	_, err := DeductPoints(user.ID, 4)
	require.NoError(t, err)

	var ledger models.PointTransaction
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&ledger).Error)
	assert.Equal(t, ledger.GenerateHash("ledger-key"), ledger.Hash)
	assert.NotEqual(t, ledger.GenerateHash("default-secret"), ledger.Hash)
}
