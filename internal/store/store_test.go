package store_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/iblamekonradzuse/fitness-tracker/internal/model"
	"github.com/iblamekonradzuse/fitness-tracker/internal/store"
)

func TestLoadDaysMissingFileMeansEmptyHistory(t *testing.T) {
	t.Parallel()

	days, err := store.LoadDays(filepath.Join(t.TempDir(), "days.json"))
	if err != nil {
		t.Fatalf("load days: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected empty history, got %d days", len(days))
	}
}

func TestLoadDaysMalformedFileIsAnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "days.json")
	if err := os.WriteFile(path, []byte(`{"not":"an array"`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := store.LoadDays(path); err == nil {
		t.Fatalf("expected decode error for malformed log")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	workout := model.NewWorkout(model.WorkoutCardio, 30)
	workout.SetCardioCalories(100)

	first := model.NewDay(model.NewDate(2024, time.January, 10))
	first.AddFood(model.NewFood("chicken breast", 1, "serving", 20, 5, 0, 125), 1)
	first.AddFood(model.NewFood("rice", 1, "cup", 4.3, 0.4, 45, 205), 2)
	first.AddWorkout(workout)

	second := model.NewDay(model.NewDate(2024, time.January, 11))
	second.AddFood(model.NewFood("egg", 1, "large", 6, 5, 0.6, 72), 3)

	days := []model.Day{first, second}
	path := filepath.Join(t.TempDir(), "days.json")
	if err := store.SaveDays(path, days); err != nil {
		t.Fatalf("save days: %v", err)
	}
	loaded, err := store.LoadDays(path)
	if err != nil {
		t.Fatalf("load days: %v", err)
	}
	if !reflect.DeepEqual(days, loaded) {
		t.Fatalf("round trip mismatch:\nsaved  %+v\nloaded %+v", days, loaded)
	}
}

func TestStateRoundTripAndMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.json")
	if _, found, err := store.LoadState(path); err != nil || found {
		t.Fatalf("expected clean miss for absent state, found=%v err=%v", found, err)
	}

	s := store.State{
		Profile:     model.Profile{HeightCm: 170, WeightKg: 65, Age: 28, Gender: model.GenderFemale},
		CurrentDate: model.NewDate(2024, time.March, 3),
	}
	if err := store.SaveState(path, s); err != nil {
		t.Fatalf("save state: %v", err)
	}
	loaded, found, err := store.LoadState(path)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if !found {
		t.Fatalf("expected state file to be found")
	}
	if !reflect.DeepEqual(s, loaded) {
		t.Fatalf("state round trip mismatch: %+v vs %+v", s, loaded)
	}
}
