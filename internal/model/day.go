package model

// Day is the unit of record for one calendar date: an insertion-ordered
// food log plus an optional workout.
type Day struct {
	Date    Date     `json:"date"`
	Foods   []Food   `json:"foods"`
	Workout *Workout `json:"workout,omitempty"`
}

func NewDay(date Date) Day {
	return Day{Date: date, Foods: []Food{}}
}

// AddFood accumulates quantity onto an existing entry when the name matches
// exactly (case-sensitive); otherwise it appends a copy of food with its
// quantity overridden by the caller-supplied value.
func (d *Day) AddFood(food Food, quantity float64) {
	for i := range d.Foods {
		if d.Foods[i].Name == food.Name {
			d.Foods[i].Quantity += quantity
			return
		}
	}
	food.Quantity = quantity
	d.Foods = append(d.Foods, food)
}

// RemoveFood deletes the entry at index, reporting whether index was in
// range.
func (d *Day) RemoveFood(index int) bool {
	if index < 0 || index >= len(d.Foods) {
		return false
	}
	d.Foods = append(d.Foods[:index], d.Foods[index+1:]...)
	return true
}

// AddWorkout replaces any workout already recorded for the day.
func (d *Day) AddWorkout(workout Workout) {
	d.Workout = &workout
}

// Reset clears the food log. The workout is an independent record of the
// day and survives a reset.
func (d *Day) Reset() {
	d.Foods = d.Foods[:0]
}

func (d *Day) TotalCalories() float64 {
	total := 0.0
	for _, f := range d.Foods {
		total += f.CalorieValue()
	}
	return total
}

func (d *Day) TotalProtein() float64 {
	total := 0.0
	for _, f := range d.Foods {
		total += f.ProteinValue()
	}
	return total
}

func (d *Day) WorkoutCaloriesBurnt() int {
	if d.Workout == nil {
		return 0
	}
	return d.Workout.CaloriesBurnt
}

// NetCalories is consumed minus workout burn minus the basal metabolic
// rate baseline.
func (d *Day) NetCalories(bmr float64) float64 {
	return d.TotalCalories() - float64(d.WorkoutCaloriesBurnt()) - bmr
}
