// Package client is the typed service layer over the meal API. Each
// call mirrors one endpoint and collapses any non-2xx response into a
// single per-operation error, which callers show to the end user and
// pair with a manual retry.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RamonPessoaDev/meal-tracker/models"
	"github.com/RamonPessoaDev/meal-tracker/services"
)

var (
	ErrFetchMeals  = errors.New("failed to fetch meals")
	ErrCreateMeal  = errors.New("failed to create meal")
	ErrFetchMeal   = errors.New("failed to fetch meal")
	ErrUpdateMeal  = errors.New("failed to update meal")
	ErrDeleteMeal  = errors.New("failed to delete meal")
	ErrFetchTotals = errors.New("failed to fetch calories summary")
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MealPayload carries the editable fields of a meal. Create and
// Update both take the full payload; there is no partial patch.
type MealPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Calories    float64         `json:"calories"`
	Datetime    time.Time       `json:"datetime"`
	Type        models.MealType `json:"type"`
}

// ListFilters narrow a ListMeals or DailySummary call. Zero values
// impose no constraint.
type ListFilters struct {
	Type models.MealType
	Date time.Time // filters to this UTC calendar day
}

func (f ListFilters) query() string {
	params := url.Values{}
	if f.Type != "" {
		params.Set("type", string(f.Type))
	}
	if !f.Date.IsZero() {
		params.Set("date", f.Date.UTC().Format("2006-01-02"))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

func (c *Client) ListMeals(ctx context.Context, filters ListFilters) ([]models.Meal, error) {
	var meals []models.Meal
	if err := c.do(ctx, http.MethodGet, "/meals"+filters.query(), nil, http.StatusOK, &meals); err != nil {
		return nil, ErrFetchMeals
	}
	return meals, nil
}

func (c *Client) CreateMeal(ctx context.Context, payload MealPayload) (*models.Meal, error) {
	var meal models.Meal
	if err := c.do(ctx, http.MethodPost, "/meals", payload, http.StatusCreated, &meal); err != nil {
		return nil, ErrCreateMeal
	}
	return &meal, nil
}

func (c *Client) GetMeal(ctx context.Context, id string) (*models.Meal, error) {
	var meal models.Meal
	if err := c.do(ctx, http.MethodGet, "/meals/"+url.PathEscape(id), nil, http.StatusOK, &meal); err != nil {
		return nil, ErrFetchMeal
	}
	return &meal, nil
}

func (c *Client) UpdateMeal(ctx context.Context, id string, payload MealPayload) (*models.Meal, error) {
	var meal models.Meal
	if err := c.do(ctx, http.MethodPut, "/meals/"+url.PathEscape(id), payload, http.StatusOK, &meal); err != nil {
		return nil, ErrUpdateMeal
	}
	return &meal, nil
}

func (c *Client) DeleteMeal(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/meals/"+url.PathEscape(id), nil, http.StatusOK, nil); err != nil {
		return ErrDeleteMeal
	}
	return nil
}

func (c *Client) DailySummary(ctx context.Context, filters ListFilters) (*services.CaloriesSummary, error) {
	var summary services.CaloriesSummary
	if err := c.do(ctx, http.MethodGet, "/meals/summary"+filters.query(), nil, http.StatusOK, &summary); err != nil {
		return nil, ErrFetchTotals
	}
	return &summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
