package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/geo"
)

// SearchClient is the place provider contract the service depends on.
type SearchClient interface {
	Search(ctx context.Context, req SearchRequest) ([]ProviderPlace, error)
	Details(ctx context.Context, placeID string) (*Details, error)
}

// GoogleClient calls the Google Places API (New) REST surface.
type GoogleClient struct {
	apiKey string
	client *http.Client
}

func NewGoogleClient() *GoogleClient {
	return &GoogleClient{
		apiKey: os.Getenv("PLACES_API_KEY"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

const searchFieldMask = "places.id,places.displayName,places.formattedAddress," +
	"places.location,places.rating,places.priceLevel,places.userRatingCount," +
	"places.currentOpeningHours.openNow,places.photos.name"

const detailsFieldMask = "id,displayName,formattedAddress,location,rating," +
	"priceLevel,userRatingCount,currentOpeningHours.openNow," +
	"nationalPhoneNumber,websiteUri,regularOpeningHours.weekdayDescriptions," +
	"editorialSummary,photos.name"

// providerPlaceJSON is the wire shape shared by search and details.
type providerPlaceJSON struct {
	ID          string `json:"id"`
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress string `json:"formattedAddress"`
	Location         struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	Rating              *float64 `json:"rating"`
	PriceLevel          string   `json:"priceLevel"`
	UserRatingCount     *int     `json:"userRatingCount"`
	CurrentOpeningHours *struct {
		OpenNow *bool `json:"openNow"`
	} `json:"currentOpeningHours"`
	Photos []struct {
		Name string `json:"name"`
	} `json:"photos"`
	NationalPhoneNumber string `json:"nationalPhoneNumber"`
	WebsiteURI          string `json:"websiteUri"`
	RegularOpeningHours *struct {
		WeekdayDescriptions []string `json:"weekdayDescriptions"`
	} `json:"regularOpeningHours"`
	EditorialSummary *struct {
		Text string `json:"text"`
	} `json:"editorialSummary"`
}

func (p providerPlaceJSON) toProviderPlace() ProviderPlace {
	place := ProviderPlace{
		ID:          p.ID,
		DisplayName: p.DisplayName.Text,
		Address:     p.FormattedAddress,
		Location: geo.Coordinate{
			Lat: p.Location.Latitude,
			Lng: p.Location.Longitude,
		},
		Rating:      p.Rating,
		PriceLevel:  p.PriceLevel,
		ReviewCount: p.UserRatingCount,
	}
	if p.CurrentOpeningHours != nil {
		place.OpenNow = p.CurrentOpeningHours.OpenNow
	}
	for _, photo := range p.Photos {
		place.PhotoRefs = append(place.PhotoRefs, photo.Name)
	}
	return place
}

// Search runs a text search biased around the origin.
func (g *GoogleClient) Search(ctx context.Context, req SearchRequest) ([]ProviderPlace, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing PLACES_API_KEY")
	}

	maxResults := req.MaxResults
	if maxResults <= 0 || maxResults > 20 {
		maxResults = 20
	}
	radius := req.RadiusMeters
	if radius <= 0 {
		radius = 5000
	}

	payload := map[string]any{
		"textQuery":      req.Query,
		"maxResultCount": maxResults,
		"locationBias": map[string]any{
			"circle": map[string]any{
				"center": map[string]float64{
					"latitude":  req.Origin.Lat,
					"longitude": req.Origin.Lng,
				},
				"radius": radius,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		"https://places.googleapis.com/v1/places:searchText",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", g.apiKey)
	httpReq.Header.Set("X-Goog-FieldMask", searchFieldMask)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("places search failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api error: %s", string(raw))
	}

	var result struct {
		Places []providerPlaceJSON `json:"places"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("invalid places response: %w", err)
	}

	out := make([]ProviderPlace, 0, len(result.Places))
	for _, p := range result.Places {
		out = append(out, p.toProviderPlace())
	}
	return out, nil
}

// Details fetches one place by id, including phone, website, weekday
// hours and editorial summary. Distance is not set here; there is no
// origin in a details lookup.
func (g *GoogleClient) Details(ctx context.Context, placeID string) (*Details, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing PLACES_API_KEY")
	}
	if placeID == "" {
		return nil, errors.New("empty place id")
	}

	detailsURL := fmt.Sprintf(
		"https://places.googleapis.com/v1/places/%s",
		url.PathEscape(placeID),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, detailsURL, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("X-Goog-Api-Key", g.apiKey)
	httpReq.Header.Set("X-Goog-FieldMask", detailsFieldMask)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("place details failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api error: %s", string(raw))
	}

	var p providerPlaceJSON
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("invalid place details response: %w", err)
	}

	mapped := MapResults([]ProviderPlace{p.toProviderPlace()}, geo.Coordinate{})
	if len(mapped) == 0 {
		return nil, errors.New("empty place details")
	}

	details := &Details{
		Restaurant: mapped[0],
		Phone:      p.NationalPhoneNumber,
		Website:    p.WebsiteURI,
	}
	details.DistanceMeters = nil
	if p.RegularOpeningHours != nil {
		details.WeekdayHours = p.RegularOpeningHours.WeekdayDescriptions
	}
	if p.EditorialSummary != nil {
		details.EditorialSummary = p.EditorialSummary.Text
	}

	return details, nil
}

// PhotoURL builds a public media URL for a provider photo reference.
func PhotoURL(ref string) string {
	key := os.Getenv("PLACES_API_KEY")
	if ref == "" || key == "" {
		return ""
	}
	return fmt.Sprintf(
		"https://places.googleapis.com/v1/%s/media?maxWidthPx=800&key=%s",
		ref,
		key,
	)
}
