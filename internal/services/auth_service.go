package services

import (
	"bodylover-backend/internal/database"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/utils"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser stores candidate with its plain-text password replaced by a
// bcrypt hash. The account ID is the login and must be unique; the username
// is only a display name.
func RegisterUser(candidate models.User) (*models.User, error) {
	var count int64
	if err := database.DB.Model(&models.User{}).Where("account_id = ?", candidate.AccountID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateIdentity
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(candidate.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		AccountID: candidate.AccountID,
		Username:  candidate.Username,
		Password:  string(hashedPassword),
		Mode:      candidate.Mode,
		Age:       candidate.Age,
		Points:    candidate.Points,
		Version:   1,
	}

	if err := database.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	return user, nil
}

// LoginUser checks the credentials and returns a fresh token with the user.
func LoginUser(accountID, password string) (string, *models.User, error) {
	var user models.User
	if err := database.DB.Where("account_id = ?", accountID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.AccountID)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
