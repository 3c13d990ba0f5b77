package services

import (
	"bodylover-backend/internal/models"
	"time"
)

// nowFunc is swapped in tests to pin "today".
var nowFunc = time.Now

func today() string {
	return nowFunc().Format(models.DateLayout)
}

// resolveDate returns date when it is a valid YYYY-MM-DD string, today when it is empty.
func resolveDate(date string) (string, error) {
	if date == "" {
		return today(), nil
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return "", ErrInvalidDate
	}
	return date, nil
}
