package lookup

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
)

const (
	ConfigAppID  = "nutritionix_app_id"
	ConfigAPIKey = "nutritionix_api_key"
)

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

// Credentials resolves the Nutritionix app id and key, preferring the
// config table and falling back to NUTRITIONIX_APP_ID / NUTRITIONIX_API_KEY
// in the environment.
func Credentials(db *sql.DB) (appID, apiKey string, ok bool, err error) {
	if db != nil {
		appID, _, err = GetConfig(db, ConfigAppID)
		if err != nil {
			return "", "", false, err
		}
		apiKey, _, err = GetConfig(db, ConfigAPIKey)
		if err != nil {
			return "", "", false, err
		}
	}
	if appID == "" {
		appID = strings.TrimSpace(os.Getenv("NUTRITIONIX_APP_ID"))
	}
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("NUTRITIONIX_API_KEY"))
	}
	return appID, apiKey, appID != "" && apiKey != "", nil
}
