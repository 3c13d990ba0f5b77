package user_test

import (
	"bodylover-backend/internal/api/test"
	"bodylover-backend/internal/api/v1/user"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/services"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, points int) (*gin.Engine, *models.User) {
	test.SetupTestDB(t)
	u, err := services.RegisterUser(models.User{AccountID: "dora", Username: "Dora", Password: "pw", Points: points})
	require.NoError(t, err)

	r := gin.New()
	user.RegisterRoutes(r.Group("/api"))
	return r, u
}

func TestGetUser(t *testing.T) {
	r, u := setup(t, 12)

	w, env := test.Do(t, r, http.MethodGet, fmt.Sprintf("/api/user/%d", u.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.User
	test.DecodeData(t, env, &got)
	assert.Equal(t, "dora", got.AccountID)
	assert.Equal(t, 12, got.Points)
	assert.NotContains(t, string(env.Data), "password")

	w, env = test.Do(t, r, http.MethodGet, "/api/user/999", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user not found", env.Message)

	w, _ = test.Do(t, r, http.MethodGet, "/api/user/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeductPoints(t *testing.T) {
	r, u := setup(t, 50)

	w, env := test.Do(t, r, http.MethodPost, "/api/user/points/deduct", gin.H{"userId": u.ID, "points": 60})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "insufficient points", env.Message)

	w, env = test.Do(t, r, http.MethodPost, "/api/user/points/deduct", gin.H{"userId": u.ID, "points": 20})
	require.Equal(t, http.StatusOK, w.Code)
	var resp user.DeductPointsResponse
	test.DecodeData(t, env, &resp)
	assert.Equal(t, 30, resp.CurrentPoints)

	w, _ = test.Do(t, r, http.MethodPost, "/api/user/points/deduct", gin.H{"userId": u.ID, "points": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = test.Do(t, r, http.MethodPost, "/api/user/points/deduct", gin.H{"userId": 999, "points": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user not found", env.Message)
}

func TestListPointTransactions(t *testing.T) {
	r, u := setup(t, 10)
	for _, amount := range []int{1, 2, 3} {
		_, err := services.DeductPoints(u.ID, amount)
		require.NoError(t, err)
	}

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCount  int
		expectedTotal  int64
	}{
		{"first page", "?page=1&limit=2", http.StatusOK, 2, 3},
		{"second page", "?page=2&limit=2", http.StatusOK, 1, 3},
		{"filtered out", "?type=plan_reward", http.StatusOK, 0, 0},
		{"bad page", "?page=0", http.StatusBadRequest, 0, 0},
		{"limit too large", "?limit=1000", http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := test.Do(t, r, http.MethodGet, fmt.Sprintf("/api/user/%d/points/transactions%s", u.ID, tt.query), nil)
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp user.PointTransactionListResponse
			test.DecodeData(t, env, &resp)
			assert.Len(t, resp.Transactions, tt.expectedCount)
			assert.Equal(t, tt.expectedTotal, resp.Total)
		})
	}
}
