package model

import "math"

// Food is one logged food with macros per single serving and a quantity
// multiplier. The Calories field carries the per-serving figure reported by
// the source (or the macro-derived figure for manual entries) so the log
// file stays readable, but the effective calorie value is always derived
// from macros at read time.
type Food struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Calories float64 `json:"calories"`
}

func NewFood(name string, quantity float64, unit string, protein, fat, carbs, calories float64) Food {
	return Food{
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		Protein:  protein,
		Fat:      fat,
		Carbs:    carbs,
		Calories: calories,
	}
}

// CalorieValue converts macros to energy (4/9/4 kcal per gram) scaled by
// quantity, rounded to one decimal.
func (f Food) CalorieValue() float64 {
	return round1((f.Protein*4 + f.Fat*9 + f.Carbs*4) * f.Quantity)
}

// ProteinValue is the protein contribution scaled by quantity.
func (f Food) ProteinValue() float64 {
	return f.Protein * f.Quantity
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
