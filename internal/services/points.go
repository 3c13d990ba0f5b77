package services

import (
	"math"
	"strings"
)

// defaultMultiplier applies to any category not listed below.
const defaultMultiplier = 0.5

// categoryMultipliers is points per minute of activity.
var categoryMultipliers = map[string]float64{
	// teenager activities
	"RUN":     2.0,
	"WALK":    0.5,
	"YOGA":    1.5,
	"STAIRS":  0.5,
	"JUMPING": 1.0,

	// adult workouts
	"CHEST":     1.0,
	"BACK":      0.5,
	"SHOULDERS": 1.0,
	"ARMS":      1.5,
	"LEGS":      1.0,
	"CORE":      2.0,
}

// CategoryMultiplier looks up category case-insensitively. Surrounding
// whitespace is part of the name.
func CategoryMultiplier(category string) float64 {
	if m, ok := categoryMultipliers[strings.ToUpper(category)]; ok {
		return m
	}
	return defaultMultiplier
}

// CalculatePlanPoints is the reward for minutes spent on a plan of the given
// category. Plans without a category earn one point per two minutes.
func CalculatePlanPoints(category string, minutes int) int {
	if minutes <= 0 {
		return 0
	}
	if category == "" {
		return minutes / 2
	}
	return int(math.Floor(float64(minutes) * CategoryMultiplier(category)))
}
