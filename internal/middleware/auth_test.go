package middleware

import (
	"bodylover-backend/internal/database"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/utils"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestEnv(t *testing.T) *models.User {
	t.Helper()
	t.Setenv("JWT_SECRET", "test_secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
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

	user := &models.User{AccountID: "alice", Username: "Alice", Password: "x", Mode: models.ModeAdult, Version: 1}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAuthMiddleware(t *testing.T) {
	user := setupTestEnv(t)
	gin.SetMode(gin.TestMode)

	signed := func(claims jwt.MapClaims, secret string) string {
		s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		return s
	}

	valid, err := utils.GenerateToken(user.ID, user.AccountID)
	require.NoError(t, err)

	revoked := signed(jwt.MapClaims{"user_id": user.ID, "exp": time.Now().Add(time.Hour).Unix(), "jti": "revoked"}, "test_secret")
	require.NoError(t, database.RedisClient.Set(database.Ctx, "denylist:"+revoked, 1, time.Hour).Err())

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing Authorization Header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "authorization header is required",
		},
		{
			name:           "Invalid Token Format",
			authHeader:     valid,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "bearer token not found",
		},
		{
			name:           "Wrong Signature",
			authHeader:     "Bearer " + signed(jwt.MapClaims{"user_id": user.ID, "exp": time.Now().Add(time.Hour).Unix()}, "other"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + signed(jwt.MapClaims{"user_id": user.ID, "exp": time.Now().Add(-time.Hour).Unix()}, "test_secret"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:           "Revoked Token",
			authHeader:     "Bearer " + revoked,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token has been revoked",
		},
		{
			name:           "Unknown User",
			authHeader:     "Bearer " + signed(jwt.MapClaims{"user_id": 404, "exp": time.Now().Add(time.Hour).Unix()}, "test_secret"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "User not found",
		},
		{
			name:           "Valid Token",
			authHeader:     "Bearer " + valid,
			expectedStatus: http.StatusOK,
			expectedBody:   "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(AuthMiddleware())
			r.GET("/me", func(c *gin.Context) {
				u, ok := CurrentUser(c)
				if !ok {
					c.String(http.StatusInternalServerError, "no user")
					return
				}
				c.String(http.StatusOK, u.AccountID)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				var resp utils.Response
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedStatus, resp.Code)
				assert.Contains(t, resp.Message, tt.expectedBody)
			} else {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger("/healthz"))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "fixed-id", w.Body.String())
}
