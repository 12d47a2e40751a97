// Package scraper ingests businesses from Google Places as scraped leads.
package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultPlacesURL is the Places web service root.
const DefaultPlacesURL = "https://maps.googleapis.com/maps/api/place"

const detailFields = "name,formatted_address,formatted_phone_number,website,rating,user_ratings_total,business_status"

// Place is a business returned by text search or details.
type Place struct {
	PlaceID        string  `json:"place_id"`
	Name           string  `json:"name"`
	Address        string  `json:"formatted_address"`
	Phone          string  `json:"formatted_phone_number"`
	Website        string  `json:"website"`
	Rating         float64 `json:"rating"`
	Reviews        int     `json:"user_ratings_total"`
	BusinessStatus string  `json:"business_status"`
}

// Places looks businesses up by query and by id.
type Places interface {
	TextSearch(ctx context.Context, query string) ([]Place, error)
	Details(ctx context.Context, placeID string) (*Place, error)
}

// PlacesClient calls the Places web service.
type PlacesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPlacesClient creates a client. An empty baseURL uses DefaultPlacesURL.
func NewPlacesClient(apiKey, baseURL string) *PlacesClient {
	if baseURL == "" {
		baseURL = DefaultPlacesURL
	}
	return &PlacesClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type searchResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
	Results      []Place `json:"results"`
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       *Place `json:"result"`
}

// ErrNoResults is returned for searches answered with ZERO_RESULTS.
var ErrNoResults = errors.New("no places found")

// TextSearch runs a Places text search in pt-BR.
func (c *PlacesClient) TextSearch(ctx context.Context, query string) ([]Place, error) {
	var resp searchResponse
	if err := c.get(ctx, "/textsearch/json", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}
	switch resp.Status {
	case "OK":
		return resp.Results, nil
	case "ZERO_RESULTS":
		return nil, ErrNoResults
	default:
		return nil, fmt.Errorf("places search returned %s: %s", resp.Status, resp.ErrorMessage)
	}
}

// Details fetches phone, website and rating for a place.
func (c *PlacesClient) Details(ctx context.Context, placeID string) (*Place, error) {
	var resp detailsResponse
	if err := c.get(ctx, "/details/json", url.Values{"place_id": {placeID}, "fields": {detailFields}}, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" || resp.Result == nil {
		return nil, fmt.Errorf("places details returned %s: %s", resp.Status, resp.ErrorMessage)
	}
	resp.Result.PlaceID = placeID
	return resp.Result, nil
}

func (c *PlacesClient) get(ctx context.Context, path string, params url.Values, dst any) error {
	params.Set("language", "pt-BR")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places returned HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
