// Package store persists the day log as a whole-file JSON array, plus a
// small sidecar file carrying the user profile and current-day cursor
// between runs.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iblamekonradzuse/fitness-tracker/internal/model"
)

// LoadDays reads the full day log. A missing file means no history yet and
// returns an empty slice; a malformed file is an error.
func LoadDays(path string) ([]model.Day, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []model.Day{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read day log: %w", err)
	}
	var days []model.Day
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("decode day log %s: %w", path, err)
	}
	return days, nil
}

// SaveDays rewrites the full day log in place.
func SaveDays(path string, days []model.Day) error {
	raw, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("encode day log: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write day log %s: %w", path, err)
	}
	return nil
}

// State is the sidecar the one-shot CLI needs so the profile and the
// current-day cursor survive between invocations. The day log format is
// not touched by this.
type State struct {
	Profile     model.Profile `json:"profile"`
	CurrentDate model.Date    `json:"current_date"`
}

// LoadState reads the sidecar; the second return reports whether it
// existed.
func LoadState(path string) (State, bool, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("read state file: %w", err)
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return State{}, false, fmt.Errorf("decode state file %s: %w", path, err)
	}
	return s, true, nil
}

func SaveState(path string, s State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write state file %s: %w", path, err)
	}
	return nil
}
