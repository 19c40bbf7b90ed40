package model

import (
	"fmt"
	"math"
	"strings"
)

type WorkoutType string

const (
	WorkoutWeightLifting WorkoutType = "WeightLifting"
	WorkoutCardio        WorkoutType = "Cardio"
)

func ParseWorkoutType(value string) (WorkoutType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "weightlifting", "weights", "lifting":
		return WorkoutWeightLifting, nil
	case "cardio":
		return WorkoutCardio, nil
	default:
		return "", fmt.Errorf("invalid workout type %q (use weightlifting or cardio)", value)
	}
}

// Workout is at most one per day; adding another replaces it.
type Workout struct {
	Type          WorkoutType `json:"workout_type"`
	Duration      int         `json:"duration"`
	CaloriesBurnt int         `json:"calories_burnt"`
}

// liftingBurn maps common weight-lifting durations (minutes) to estimated
// calories burnt; other durations extrapolate linearly at ~3.67 kcal/min.
var liftingBurn = map[int]int{
	30:  120,
	60:  220,
	90:  330,
	120: 440,
}

// NewWorkout estimates calories burnt for weight lifting from the duration.
// Cardio starts at zero; the burn figure is user-supplied via
// SetCardioCalories.
func NewWorkout(workoutType WorkoutType, durationMin int) Workout {
	burnt := 0
	if workoutType == WorkoutWeightLifting {
		if v, ok := liftingBurn[durationMin]; ok {
			burnt = v
		} else {
			burnt = int(math.Round(float64(durationMin) * 3.67))
		}
	}
	return Workout{
		Type:          workoutType,
		Duration:      durationMin,
		CaloriesBurnt: burnt,
	}
}

func (w *Workout) SetCardioCalories(calories int) {
	if w.Type == WorkoutCardio {
		w.CaloriesBurnt = calories
	}
}
