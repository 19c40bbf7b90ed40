package lookup

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/iblamekonradzuse/fitness-tracker/internal/db"
	"github.com/iblamekonradzuse/fitness-tracker/internal/model"
	"github.com/iblamekonradzuse/fitness-tracker/internal/provider/nutritionix"
)

func newCacheDB(t *testing.T) *sql.DB {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func TestCacheRoundTrip(t *testing.T) {
	t.Parallel()

	sqldb := newCacheDB(t)
	foods := []model.Food{model.NewFood("apple", 2, "medium", 0.5, 0.3, 25, 95)}
	if err := cacheUpsert(sqldb, "2 Apples!", foods, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("upsert cache: %v", err)
	}

	got, found, err := cacheLookup(sqldb, "2 apples")
	if err != nil {
		t.Fatalf("lookup cache: %v", err)
	}
	if !found {
		t.Fatalf("expected cache hit for normalized query")
	}
	if len(got) != 1 || got[0].Name != "apple" {
		t.Fatalf("unexpected cache payload: %+v", got)
	}
}

func TestCacheExpires(t *testing.T) {
	t.Parallel()

	sqldb := newCacheDB(t)
	foods := []model.Food{model.NewFood("apple", 1, "medium", 0.5, 0.3, 25, 95)}
	if err := cacheUpsert(sqldb, "apple", foods, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("upsert cache: %v", err)
	}
	if _, found, err := cacheLookup(sqldb, "apple"); err != nil {
		t.Fatalf("lookup cache: %v", err)
	} else if found {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestSearchPopulatesAndServesCache(t *testing.T) {
	t.Parallel()

	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"foods":[{"food_name":"apple","serving_qty":2,"serving_unit":"medium","nf_calories":190,"nf_protein":1,"nf_total_fat":0.6,"nf_total_carbohydrate":50.4}]}`))
	}))
	defer ts.Close()

	svc := &Service{
		DB: newCacheDB(t),
		Client: &nutritionix.Client{
			AppID:      "demo-id",
			APIKey:     "demo-key",
			BaseURL:    ts.URL,
			HTTPClient: ts.Client(),
		},
	}

	first, err := svc.Search(context.Background(), "2 apples")
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	second, err := svc.Search(context.Background(), "2 apples")
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one provider call, got %d", calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Name != "apple" {
		t.Fatalf("unexpected results: first=%+v second=%+v", first, second)
	}
}

func TestListAndPurgeCache(t *testing.T) {
	t.Parallel()

	sqldb := newCacheDB(t)
	foods := []model.Food{model.NewFood("toast", 1, "slice", 3, 1, 13, 75)}
	if err := cacheUpsert(sqldb, "toast", foods, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("upsert cache: %v", err)
	}

	items, err := ListCache(sqldb, 10)
	if err != nil {
		t.Fatalf("list cache: %v", err)
	}
	if len(items) != 1 || items[0].Query != "toast" {
		t.Fatalf("unexpected cache listing: %+v", items)
	}

	removed, err := PurgeCache(sqldb, "toast", false)
	if err != nil {
		t.Fatalf("purge cache: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected one purged row, got %d", removed)
	}

	if _, err := PurgeCache(sqldb, "", false); err == nil {
		t.Fatalf("expected error when neither --all nor query given")
	}
}

func TestConfigAndCredentials(t *testing.T) {
	t.Setenv("NUTRITIONIX_APP_ID", "")
	t.Setenv("NUTRITIONIX_API_KEY", "")
	sqldb := newCacheDB(t)

	if _, _, ok, err := Credentials(sqldb); err != nil {
		t.Fatalf("credentials: %v", err)
	} else if ok {
		t.Fatalf("expected no credentials configured")
	}

	if err := SetConfig(sqldb, ConfigAppID, "demo-id"); err != nil {
		t.Fatalf("set app id: %v", err)
	}
	if err := SetConfig(sqldb, ConfigAPIKey, "demo-key"); err != nil {
		t.Fatalf("set api key: %v", err)
	}

	appID, apiKey, ok, err := Credentials(sqldb)
	if err != nil {
		t.Fatalf("credentials: %v", err)
	}
	if !ok || appID != "demo-id" || apiKey != "demo-key" {
		t.Fatalf("unexpected credentials: %q %q ok=%v", appID, apiKey, ok)
	}

	all, err := ListConfig(sqldb)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected two config keys, got %d", len(all))
	}
}
