package utils

import "math"

// weightScale keeps four decimals of the weight in integer arithmetic.
const weightScale = 10000

// CalculateBMI expects height in centimeters and weight in kilograms.
// Height is rounded to centimeter precision in meters before squaring, and the
// result is rounded half-up to two decimals. ok is false when height is not positive.
func CalculateBMI(heightCm, weightKg float64) (bmi float64, ok bool) {
	cm := int64(math.Round(heightCm))
	if cm <= 0 {
		return 0, false
	}

	// bmi*100 = weight / (cm/100)^2 * 100 = w*100 / cm^2 with w = weight*weightScale
	w := int64(math.Round(weightKg * weightScale))
	num := w * 100
	den := cm * cm

	neg := num < 0
	if neg {
		num = -num
	}
	hundredths := (2*num + den) / (2 * den)
	if neg {
		hundredths = -hundredths
	}
	return float64(hundredths) / 100, true
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
