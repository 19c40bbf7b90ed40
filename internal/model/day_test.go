package model

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalorieValueDerivesFromMacrosTimesQuantity(t *testing.T) {
	t.Parallel()

	chicken := NewFood("chicken breast", 1, "serving", 20, 5, 0, 0)
	if got := chicken.CalorieValue(); !almostEqual(got, 125) {
		t.Fatalf("expected 125 kcal, got %v", got)
	}

	chicken.Quantity = 2
	if got := chicken.CalorieValue(); !almostEqual(got, 250) {
		t.Fatalf("expected 250 kcal at quantity 2, got %v", got)
	}
	if got := chicken.ProteinValue(); !almostEqual(got, 40) {
		t.Fatalf("expected 40g protein at quantity 2, got %v", got)
	}
}

func TestAddFoodAccumulatesQuantityOnNameMatch(t *testing.T) {
	t.Parallel()

	day := NewDay(NewDate(2024, time.January, 10))
	day.AddFood(NewFood("apple", 1, "medium", 0.5, 0.3, 25, 95), 1)
	day.AddFood(NewFood("apple", 1, "medium", 0.5, 0.3, 25, 95), 2)

	if len(day.Foods) != 1 {
		t.Fatalf("expected one entry after duplicate add, got %d", len(day.Foods))
	}
	if !almostEqual(day.Foods[0].Quantity, 3) {
		t.Fatalf("expected quantity 3, got %v", day.Foods[0].Quantity)
	}

	// Match is case-sensitive.
	day.AddFood(NewFood("Apple", 1, "medium", 0.5, 0.3, 25, 95), 1)
	if len(day.Foods) != 2 {
		t.Fatalf("expected case-sensitive mismatch to append, got %d entries", len(day.Foods))
	}
}

func TestAddFoodOverridesQuantityOnInsert(t *testing.T) {
	t.Parallel()

	day := NewDay(NewDate(2024, time.January, 10))
	day.AddFood(NewFood("rice", 4, "cup", 4.3, 0.4, 45, 205), 1.5)
	if !almostEqual(day.Foods[0].Quantity, 1.5) {
		t.Fatalf("expected caller-supplied quantity 1.5, got %v", day.Foods[0].Quantity)
	}
}

func TestRemoveFoodBounds(t *testing.T) {
	t.Parallel()

	day := NewDay(NewDate(2024, time.January, 10))
	day.AddFood(NewFood("egg", 1, "large", 6, 5, 0.6, 72), 1)

	if day.RemoveFood(5) {
		t.Fatalf("expected out-of-range removal to report false")
	}
	if day.RemoveFood(-1) {
		t.Fatalf("expected negative index removal to report false")
	}
	if !day.RemoveFood(0) {
		t.Fatalf("expected in-range removal to succeed")
	}
	if len(day.Foods) != 0 {
		t.Fatalf("expected empty food list, got %d entries", len(day.Foods))
	}
}

func TestTotalCaloriesMatchesSumOfEntries(t *testing.T) {
	t.Parallel()

	day := NewDay(NewDate(2024, time.January, 10))
	day.AddFood(NewFood("chicken breast", 1, "serving", 20, 5, 0, 0), 1)
	day.AddFood(NewFood("rice", 1, "cup", 4.3, 0.4, 45, 205), 2)
	day.AddFood(NewFood("egg", 1, "large", 6, 5, 0.6, 72), 1)
	if !day.RemoveFood(2) {
		t.Fatalf("remove food failed")
	}

	want := 0.0
	for _, f := range day.Foods {
		want += f.CalorieValue()
	}
	if got := day.TotalCalories(); !almostEqual(got, want) {
		t.Fatalf("total calories %v does not match entry sum %v", got, want)
	}
}

func TestNetCaloriesSubtractsWorkoutAndBMR(t *testing.T) {
	t.Parallel()

	day := NewDay(NewDate(2024, time.January, 10))
	day.AddFood(NewFood("chicken breast", 1, "serving", 20, 5, 0, 0), 1)

	workout := NewWorkout(WorkoutCardio, 30)
	workout.SetCardioCalories(100)
	day.AddWorkout(workout)

	if got := day.NetCalories(1500); !almostEqual(got, -1475) {
		t.Fatalf("expected net -1475, got %v", got)
	}
}

func TestResetClearsFoodsButKeepsWorkout(t *testing.T) {
	t.Parallel()

	day := NewDay(NewDate(2024, time.January, 10))
	day.AddFood(NewFood("toast", 1, "slice", 3, 1, 13, 75), 1)
	day.AddWorkout(NewWorkout(WorkoutWeightLifting, 60))

	day.Reset()
	if len(day.Foods) != 0 {
		t.Fatalf("expected foods cleared, got %d entries", len(day.Foods))
	}
	if day.Workout == nil {
		t.Fatalf("expected workout to survive reset")
	}
}

func TestAddWorkoutReplacesExisting(t *testing.T) {
	t.Parallel()

	day := NewDay(NewDate(2024, time.January, 10))
	day.AddWorkout(NewWorkout(WorkoutWeightLifting, 60))
	day.AddWorkout(NewWorkout(WorkoutWeightLifting, 30))

	if day.Workout.CaloriesBurnt != 120 {
		t.Fatalf("expected second workout to replace first, got %d kcal", day.Workout.CaloriesBurnt)
	}
}
