// Package tracker owns the full day collection, the current-day cursor and
// the user profile, and persists the log after every mutation.
package tracker

import (
	"context"
	"fmt"
	"sort"

	"github.com/iblamekonradzuse/fitness-tracker/internal/fuzzy"
	"github.com/iblamekonradzuse/fitness-tracker/internal/model"
	"github.com/iblamekonradzuse/fitness-tracker/internal/store"
)

// Scorer ranks a candidate food name against a query; the second return is
// false when the candidate does not match at all.
type Scorer interface {
	Score(query, candidate string) (int, bool)
}

// Provider looks up structured foods for a free-text query, e.g. "2 apples
// and a slice of toast".
type Provider interface {
	Search(ctx context.Context, query string) ([]model.Food, error)
}

type Tracker struct {
	days     []model.Day
	path     string
	current  int
	profile  model.Profile
	scorer   Scorer
	provider Provider
}

type Option func(*Tracker)

func WithScorer(s Scorer) Option {
	return func(t *Tracker) { t.scorer = s }
}

func WithProvider(p Provider) Option {
	return func(t *Tracker) { t.provider = p }
}

func WithProfile(p model.Profile) Option {
	return func(t *Tracker) { t.profile = p }
}

// New loads the persisted day log at path. An empty log is seeded with a
// day for today; the cursor starts at the first day.
func New(path string, opts ...Option) (*Tracker, error) {
	days, err := store.LoadDays(path)
	if err != nil {
		return nil, err
	}
	t := &Tracker{
		days:    days,
		path:    path,
		profile: model.DefaultProfile(),
		scorer:  fuzzy.Scorer{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.days) == 0 {
		t.days = append(t.days, model.NewDay(model.Today()))
	}
	return t, nil
}

func (t *Tracker) Days() []model.Day {
	return t.days
}

func (t *Tracker) CurrentDay() (*model.Day, error) {
	if t.current < 0 || t.current >= len(t.days) {
		return nil, ErrNoDaysRecorded
	}
	return &t.days[t.current], nil
}

func (t *Tracker) CurrentDate() (model.Date, error) {
	day, err := t.CurrentDay()
	if err != nil {
		return model.Date{}, err
	}
	return day.Date, nil
}

// AddFood mutates the current day and persists. A save failure is surfaced
// but the in-memory mutation is not rolled back; state and disk may then
// disagree.
func (t *Tracker) AddFood(food model.Food, quantity float64) error {
	day, err := t.CurrentDay()
	if err != nil {
		return err
	}
	day.AddFood(food, quantity)
	return t.save()
}

// AddFoodManually logs a single serving of a hand-entered food.
func (t *Tracker) AddFoodManually(food model.Food) error {
	return t.AddFood(food, 1)
}

func (t *Tracker) RemoveFood(index int) error {
	day, err := t.CurrentDay()
	if err != nil {
		return err
	}
	if !day.RemoveFood(index) {
		return fmt.Errorf("remove food %d: %w", index, ErrInvalidIndex)
	}
	return t.save()
}

func (t *Tracker) AddWorkout(workout model.Workout) error {
	day, err := t.CurrentDay()
	if err != nil {
		return err
	}
	day.AddWorkout(workout)
	return t.save()
}

func (t *Tracker) ResetDay() error {
	day, err := t.CurrentDay()
	if err != nil {
		return err
	}
	day.Reset()
	return t.save()
}

// RegisterDay appends a day for the date following the current day and
// moves the cursor there. A still-empty trailing day that itself came from
// registration is reused rather than stacked, so repeated registration
// with no logging in between creates exactly one new day.
func (t *Tracker) RegisterDay() error {
	current, err := t.CurrentDay()
	if err != nil {
		return err
	}
	if t.current == len(t.days)-1 && t.current > 0 &&
		len(current.Foods) == 0 && current.Workout == nil &&
		t.days[t.current-1].Date.Next().Equal(current.Date) {
		return nil
	}
	next := current.Date.Next()
	for i := range t.days {
		if t.days[i].Date.Equal(next) {
			return nil
		}
	}
	t.days = append(t.days, model.NewDay(next))
	t.current = len(t.days) - 1
	return t.save()
}

// ChangeDay navigates to an already-registered date. On failure the cursor
// is left where it was.
func (t *Tracker) ChangeDay(date model.Date) error {
	for i := range t.days {
		if t.days[i].Date.Equal(date) {
			t.current = i
			return nil
		}
	}
	return fmt.Errorf("change day to %s: %w", date, ErrDateNotFound)
}

type SearchResult struct {
	Food  model.Food
	Score int
}

// SearchFood fuzzy-matches query against every food ever logged, across
// all days, and returns matches in descending score order.
func (t *Tracker) SearchFood(query string) []SearchResult {
	results := make([]SearchResult, 0)
	for i := range t.days {
		for _, food := range t.days[i].Foods {
			if score, ok := t.scorer.Score(query, food.Name); ok {
				results = append(results, SearchResult{Food: food, Score: score})
			}
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// AddFromLookup asks the nutrition provider for query and logs one serving
// of every returned food. A provider failure is recovered into an empty
// result set so the caller can fall back to manual entry; persistence
// failures still propagate.
func (t *Tracker) AddFromLookup(ctx context.Context, query string) ([]model.Food, error) {
	if t.provider == nil {
		return nil, fmt.Errorf("no nutrition lookup provider configured")
	}
	foods, err := t.provider.Search(ctx, query)
	if err != nil {
		return []model.Food{}, nil
	}
	added := make([]model.Food, 0, len(foods))
	for _, food := range foods {
		if err := t.AddFood(food, 1); err != nil {
			return added, err
		}
		added = append(added, food)
	}
	return added, nil
}

type WeekEntry struct {
	Date     model.Date
	Calories float64
	Protein  float64
	Workout  *model.Workout
}

// WeekWindow reports the trailing seven calendar days ending at the
// current day, ascending, with zero-valued aggregates for dates that were
// never registered.
func (t *Tracker) WeekWindow() ([]WeekEntry, error) {
	current, err := t.CurrentDay()
	if err != nil {
		return nil, err
	}
	start := current.Date.AddDays(-6)
	entries := make([]WeekEntry, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDays(i)
		entry := WeekEntry{Date: date}
		for j := range t.days {
			if t.days[j].Date.Equal(date) {
				entry.Calories = t.days[j].TotalCalories()
				entry.Protein = t.days[j].TotalProtein()
				entry.Workout = t.days[j].Workout
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (t *Tracker) Profile() model.Profile {
	return t.profile
}

func (t *Tracker) SetProfile(p model.Profile) {
	t.profile = p
}

func (t *Tracker) BMI() float64 {
	return t.profile.BMI()
}

func (t *Tracker) BMR() float64 {
	return t.profile.BMR()
}

func (t *Tracker) RecommendedProtein(workoutsPerWeek int) float64 {
	return t.profile.RecommendedProtein(workoutsPerWeek)
}

func (t *Tracker) save() error {
	if err := store.SaveDays(t.path, t.days); err != nil {
		return fmt.Errorf("persist day log: %w", err)
	}
	return nil
}
