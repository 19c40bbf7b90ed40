package ftrack

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iblamekonradzuse/fitness-tracker/internal/app"
	"github.com/iblamekonradzuse/fitness-tracker/internal/db"
	"github.com/iblamekonradzuse/fitness-tracker/internal/store"
	"github.com/iblamekonradzuse/fitness-tracker/internal/tracker"
)

func resolveLogPath() (string, error) {
	if strings.TrimSpace(logPath) != "" {
		return logPath, nil
	}
	return app.DefaultLogPath()
}

func resolveStatePath() (string, error) {
	if strings.TrimSpace(statePath) != "" {
		return statePath, nil
	}
	return app.DefaultStatePath()
}

func resolveCachePath() (string, error) {
	if strings.TrimSpace(cachePath) != "" {
		return cachePath, nil
	}
	return app.DefaultCachePath()
}

// withTracker loads the day log and the profile/cursor sidecar, navigates
// back to the saved current day, runs fn, and writes the sidecar back so
// the cursor and profile survive one-shot invocations.
func withTracker(run func(*tracker.Tracker) error, opts ...tracker.Option) error {
	logFile, err := resolveLogPath()
	if err != nil {
		return err
	}
	stateFile, err := resolveStatePath()
	if err != nil {
		return err
	}
	if err := app.EnsureDir(logFile); err != nil {
		return err
	}

	state, found, err := store.LoadState(stateFile)
	if err != nil {
		return err
	}
	if found {
		opts = append(opts, tracker.WithProfile(state.Profile))
	}

	tr, err := tracker.New(logFile, opts...)
	if err != nil {
		return err
	}
	if found && !state.CurrentDate.IsZero() {
		// The saved day may be gone if the log file was replaced; fall
		// back to the first day.
		if err := tr.ChangeDay(state.CurrentDate); err != nil && !errors.Is(err, tracker.ErrDateNotFound) {
			return err
		}
	}

	if err := run(tr); err != nil {
		return err
	}

	current, err := tr.CurrentDate()
	if err != nil {
		return err
	}
	return store.SaveState(stateFile, store.State{Profile: tr.Profile(), CurrentDate: current})
}

func withCache(run func(*sql.DB) error) error {
	path, err := resolveCachePath()
	if err != nil {
		return err
	}
	if err := app.EnsureDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func parseIndexArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}
