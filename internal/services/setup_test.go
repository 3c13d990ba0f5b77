package services

import (
	"bodylover-backend/internal/database"
	"bodylover-backend/internal/models"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB points the package at a fresh in-memory database and a
// miniredis instance for the duration of the test.
func setupTestDB(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	t.Setenv("JWT_SECRET", "test_secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	database.DB = db

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	database.RedisClient = client

	t.Cleanup(func() {
		client.Close()
		database.RedisClient = nil
		sqlDB.Close()
		database.DB = nil
	})
	return mr
}

// pinToday fixes the clock used for default dates.
func pinToday(t *testing.T, day string) time.Time {
	t.Helper()
	now, err := time.ParseInLocation(models.DateLayout, day, time.Local)
	require.NoError(t, err)
	now = now.Add(10 * time.Hour)

	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = time.Now })
	return now
}

func createUser(t *testing.T, accountID string, points int) *models.User {
	t.Helper()
	user, err := RegisterUser(models.User{
		AccountID: accountID,
		Username:  "user " + accountID,
		Password:  "secret123",
		Mode:      models.ModeAdult,
		Age:       30,
		Points:    points,
	})
	require.NoError(t, err)
	return user
}

func ptrFloat(v float64) *float64 { return &v }

func ptrInt(v int) *int { return &v }
