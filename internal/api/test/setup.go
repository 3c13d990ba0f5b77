// Package test holds fixtures shared by the handler tests.
package test

import (
	"bodylover-backend/internal/database"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const JWTSecret = "test_secret"

// SetupTestDB migrates a fresh in-memory database into database.DB and
// backs database.RedisClient with miniredis. Both are reset on cleanup.
func SetupTestDB(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	t.Setenv("JWT_SECRET", JWTSecret)
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
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

// Envelope mirrors utils.Response with the data left raw for the caller to decode.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Do sends body (JSON encoded when not nil) to r and decodes the envelope.
func Do(t *testing.T, r http.Handler, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env Envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

// DecodeData unmarshals the envelope data into v.
func DecodeData(t *testing.T, env Envelope, v interface{}) {
	t.Helper()
	require.NotEmpty(t, env.Data, "envelope has no data")
	require.NoError(t, json.Unmarshal(env.Data, v))
}
