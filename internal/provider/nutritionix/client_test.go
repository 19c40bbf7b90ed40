package nutritionix

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNaturalNutrientsParsesResponse(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/natural/nutrients" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-app-id") != "demo-id" || r.Header.Get("x-app-key") != "demo-key" {
			t.Errorf("missing credentials headers")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "foods": [
    {
      "food_name": "apple",
      "serving_qty": 2,
      "serving_unit": "medium",
      "nf_calories": 190,
      "nf_protein": 1,
      "nf_total_fat": 0.6,
      "nf_total_carbohydrate": 50.4
    },
    {
      "food_name": "chicken breast",
      "serving_qty": 200,
      "serving_unit": "g",
      "nf_calories": 330,
      "nf_protein": 62,
      "nf_total_fat": 7.2
    }
  ]
}`))
	}))
	defer ts.Close()

	c := &Client{
		AppID:      "demo-id",
		APIKey:     "demo-key",
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	}

	foods, _, err := c.NaturalNutrients(context.Background(), "2 apples, 200 grams of chicken")
	if err != nil {
		t.Fatalf("natural nutrients: %v", err)
	}
	if len(foods) != 2 {
		t.Fatalf("expected two foods, got %d", len(foods))
	}
	if foods[0].Name != "apple" || foods[0].Quantity != 2 || foods[0].Carbs != 50.4 {
		t.Fatalf("unexpected first food: %+v", foods[0])
	}

	// Carbs absent: derived as (330 - 62*4 - 7.2*9) / 4 = 4.3.
	if foods[1].Carbs != 4.3 {
		t.Fatalf("expected derived carbs 4.3, got %v", foods[1].Carbs)
	}
}

func TestNaturalNutrientsSurfacesHTTPFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := &Client{AppID: "demo-id", APIKey: "demo-key", BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, _, err := c.NaturalNutrients(context.Background(), "toast"); err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
}

func TestNaturalNutrientsRequiresCredentials(t *testing.T) {
	t.Parallel()

	c := &Client{}
	if _, _, err := c.NaturalNutrients(context.Background(), "toast"); err == nil {
		t.Fatalf("expected error for missing credentials")
	}
}
