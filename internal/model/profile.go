package model

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func ParseGender(value string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("invalid gender %q (use male or female)", value)
	}
}

type Profile struct {
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Age      int     `json:"age"`
	Gender   Gender  `json:"gender"`
}

func DefaultProfile() Profile {
	return Profile{HeightCm: 180, WeightKg: 79, Age: 22, Gender: GenderMale}
}

func (p Profile) BMI() float64 {
	heightM := p.HeightCm / 100
	return p.WeightKg / (heightM * heightM)
}

func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR is the Harris-Benedict basal metabolic rate estimate.
func (p Profile) BMR() float64 {
	if p.Gender == GenderFemale {
		return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.Age)
	}
	return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age)
}

// RecommendedProtein scales body weight by an activity bracket keyed on
// workouts per week.
func (p Profile) RecommendedProtein(workoutsPerWeek int) float64 {
	var factor float64
	switch {
	case workoutsPerWeek <= 1:
		factor = 0.8
	case workoutsPerWeek <= 3:
		factor = 1.0
	case workoutsPerWeek <= 5:
		factor = 1.2
	default:
		factor = 1.4
	}
	return p.WeightKg * factor
}
