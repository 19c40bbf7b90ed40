// Package nutritionix queries the Nutritionix natural-language nutrients
// endpoint: free text in ("2 apples, 200 grams of chicken"), structured
// food records out.
package nutritionix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://trackapi.nutritionix.com"
	defaultTimezone = "US/Eastern"
)

type FoodResult struct {
	Name     string  `json:"food_name"`
	Quantity float64 `json:"serving_qty"`
	Unit     string  `json:"serving_unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carbs_g"`
}

type Client struct {
	AppID      string
	APIKey     string
	BaseURL    string
	Timezone   string
	HTTPClient *http.Client
}

// NaturalNutrients resolves a free-text query to zero or more foods. When
// the API omits carbohydrate, it is derived from the remaining energy:
// (kcal - protein*4 - fat*9) / 4, rounded to one decimal.
func (c *Client) NaturalNutrients(ctx context.Context, query string) ([]FoodResult, []byte, error) {
	if strings.TrimSpace(c.AppID) == "" || strings.TrimSpace(c.APIKey) == "" {
		return nil, nil, fmt.Errorf("missing Nutritionix credentials")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timezone := strings.TrimSpace(c.Timezone)
	if timezone == "" {
		timezone = defaultTimezone
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	payload, err := json.Marshal(map[string]string{
		"query":    query,
		"timezone": timezone,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal nutrients payload: %w", err)
	}

	url := baseURL + "/v2/natural/nutrients"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("create nutrients request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", c.AppID)
	req.Header.Set("x-app-key", c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("execute nutrients request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read nutrients response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, body, fmt.Errorf("nutritionix request failed with status %d", resp.StatusCode)
	}

	var parsed nutrientsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, body, fmt.Errorf("decode nutrients response: %w", err)
	}

	out := make([]FoodResult, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		carbs := 0.0
		if f.TotalCarbohydrate != nil {
			carbs = *f.TotalCarbohydrate
		} else {
			carbs = (f.Calories - f.Protein*4 - f.TotalFat*9) / 4
		}
		out = append(out, FoodResult{
			Name:     strings.TrimSpace(f.FoodName),
			Quantity: f.ServingQty,
			Unit:     strings.TrimSpace(f.ServingUnit),
			Calories: f.Calories,
			Protein:  f.Protein,
			Fat:      f.TotalFat,
			Carbs:    math.Round(carbs*10) / 10,
		})
	}
	return out, body, nil
}

type nutrientsResponse struct {
	Foods []nutrientsFood `json:"foods"`
}

type nutrientsFood struct {
	FoodName          string   `json:"food_name"`
	ServingQty        float64  `json:"serving_qty"`
	ServingUnit       string   `json:"serving_unit"`
	Calories          float64  `json:"nf_calories"`
	Protein           float64  `json:"nf_protein"`
	TotalFat          float64  `json:"nf_total_fat"`
	TotalCarbohydrate *float64 `json:"nf_total_carbohydrate"`
}
