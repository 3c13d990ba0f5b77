package auth

import (
	"bodylover-backend/internal/api/v1/common"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/services"
	"bodylover-backend/internal/utils"
	"bodylover-backend/pkg/logger"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Register godoc
// @Summary Register a new user
// @Description Create an account. accountId is the unique login; username is a display name.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   RegisterInput  true  "Register Input"
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 400 {object} utils.Response
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var input RegisterInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	username := input.Username
	if username == "" {
		username = input.AccountID
	}

	u, err := services.RegisterUser(models.User{
		AccountID: input.AccountID,
		Username:  username,
		Password:  input.Password,
		Mode:      input.Mode,
		Age:       input.Age,
		Points:    input.Points,
	})
	if err != nil {
		common.RespondError(c, err, "register user")
		return
	}

	token, err := utils.GenerateToken(u.ID, u.AccountID)
	if err != nil {
		common.RespondError(c, err, "generate token")
		return
	}

	utils.OK(c, "User registered successfully", newUserResponse(u, token))
}

// Login godoc
// @Summary Log in a user
// @Description Log in with accountId (or username as an alias for it) and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   LoginInput  true  "Login Input"
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 400 {object} utils.Response
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if input.loginID() == "" {
		utils.Fail(c, http.StatusBadRequest, "accountId is required")
		return
	}

	token, u, err := services.LoginUser(input.loginID(), input.Password)
	if err != nil {
		common.RespondError(c, err, "log in")
		return
	}

	utils.OK(c, "Logged in successfully", newUserResponse(u, token))
}

// Logout godoc
// @Summary Log out a user
// @Description Revoke the bearer token until it expires
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		utils.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	remaining := utils.TokenLifetime
	if claims, err := utils.ValidateToken(tokenString); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			remaining = time.Until(time.Unix(int64(exp), 0))
		}
	}
	if remaining <= 0 {
		utils.OK(c, "Logged out successfully", nil)
		return
	}

	if err := services.AddToDenylist(tokenString, remaining); err != nil {
		if errors.Is(err, services.ErrDenylistUnavailable) {
			// nothing to revoke against; the token simply runs out
			logger.Log.Warn("Logout without token denylist", zap.Error(err))
			utils.OK(c, "Logged out successfully", nil)
			return
		}
		common.RespondError(c, err, "denylist token")
		return
	}

	utils.OK(c, "Logged out successfully", nil)
}
