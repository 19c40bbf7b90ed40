// Package lookup resolves free-text food queries through the Nutritionix
// provider, caching results in sqlite so repeated queries stay offline.
package lookup

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/iblamekonradzuse/fitness-tracker/internal/model"
	"github.com/iblamekonradzuse/fitness-tracker/internal/provider/nutritionix"
)

const defaultCacheTTL = 7 * 24 * time.Hour

// Service implements the tracker's Provider seam.
type Service struct {
	DB     *sql.DB
	Client *nutritionix.Client
	TTL    time.Duration
}

// Search returns foods for query, serving from the cache when a fresh
// entry exists and calling the provider otherwise.
func (s *Service) Search(ctx context.Context, query string) ([]model.Food, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("lookup query is required")
	}

	if s.DB != nil {
		if cached, found, err := cacheLookup(s.DB, query); err != nil {
			return nil, err
		} else if found {
			return cached, nil
		}
	}

	if s.Client == nil {
		return nil, fmt.Errorf("no nutrition provider configured")
	}
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	results, _, err := s.Client.NaturalNutrients(ctx, query)
	if err != nil {
		return nil, err
	}
	foods := make([]model.Food, 0, len(results))
	for _, r := range results {
		foods = append(foods, model.NewFood(r.Name, r.Quantity, r.Unit, r.Protein, r.Fat, r.Carbs, r.Calories))
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if s.DB != nil {
		if err := cacheUpsert(s.DB, query, foods, time.Now().Add(ttl)); err != nil {
			return nil, err
		}
	}
	return foods, nil
}

// normalizeQuery collapses a query to lowercase single-spaced alphanumeric
// tokens so trivially different spellings share a cache row.
var queryNormRe = regexp.MustCompile(`[^a-z0-9]+`)

func normalizeQuery(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	query = queryNormRe.ReplaceAllString(query, " ")
	return strings.Join(strings.Fields(query), " ")
}

func cacheLookup(db *sql.DB, query string) ([]model.Food, bool, error) {
	var raw string
	var expiresAtRaw string
	err := db.QueryRow(`
SELECT results_json, expires_at
FROM lookup_cache
WHERE query_norm = ?
`, normalizeQuery(query)).Scan(&raw, &expiresAtRaw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup cache: %w", err)
	}
	expiresAt, err := time.Parse(time.RFC3339, expiresAtRaw)
	if err != nil {
		return nil, false, fmt.Errorf("parse lookup cache expiry: %w", err)
	}
	if time.Now().After(expiresAt) {
		return nil, false, nil
	}
	var foods []model.Food
	if err := json.Unmarshal([]byte(raw), &foods); err != nil {
		return nil, false, fmt.Errorf("decode lookup cache: %w", err)
	}
	return foods, true, nil
}

func cacheUpsert(db *sql.DB, query string, foods []model.Food, expiresAt time.Time) error {
	payload, err := json.Marshal(foods)
	if err != nil {
		return fmt.Errorf("marshal lookup cache payload: %w", err)
	}
	_, err = db.Exec(`
INSERT INTO lookup_cache(query, query_norm, results_json, fetched_at, expires_at)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(query_norm) DO UPDATE SET
  query=excluded.query,
  results_json=excluded.results_json,
  fetched_at=excluded.fetched_at,
  expires_at=excluded.expires_at
`, strings.TrimSpace(query), normalizeQuery(query), string(payload),
		time.Now().Format(time.RFC3339), expiresAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert lookup cache: %w", err)
	}
	return nil
}

type CacheItem struct {
	Query     string    `json:"query"`
	FetchedAt time.Time `json:"fetched_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func ListCache(db *sql.DB, limit int) ([]CacheItem, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.Query(`
SELECT query, fetched_at, expires_at
FROM lookup_cache
ORDER BY fetched_at DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list lookup cache: %w", err)
	}
	defer rows.Close()

	out := make([]CacheItem, 0)
	for rows.Next() {
		var item CacheItem
		var fetched, expires string
		if err := rows.Scan(&item.Query, &fetched, &expires); err != nil {
			return nil, fmt.Errorf("scan lookup cache: %w", err)
		}
		item.FetchedAt, _ = time.Parse(time.RFC3339, fetched)
		item.ExpiresAt, _ = time.Parse(time.RFC3339, expires)
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lookup cache: %w", err)
	}
	return out, nil
}

func PurgeCache(db *sql.DB, query string, purgeAll bool) (int64, error) {
	var (
		res sql.Result
		err error
	)
	switch {
	case purgeAll:
		res, err = db.Exec(`DELETE FROM lookup_cache`)
	case strings.TrimSpace(query) != "":
		res, err = db.Exec(`DELETE FROM lookup_cache WHERE query_norm = ?`, normalizeQuery(query))
	default:
		return 0, fmt.Errorf("specify --all or a query")
	}
	if err != nil {
		return 0, fmt.Errorf("purge lookup cache: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("lookup cache rows affected: %w", err)
	}
	return affected, nil
}
