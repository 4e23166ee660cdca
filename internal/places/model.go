package places

import (
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/geo"
)

// ProviderPlace is the raw shape one search result arrives in, before
// normalization.
type ProviderPlace struct {
	ID          string
	DisplayName string
	Address     string
	Location    geo.Coordinate
	Rating      *float64
	PriceLevel  string // provider enum, e.g. PRICE_LEVEL_MODERATE
	OpenNow     *bool
	ReviewCount *int
	PhotoRefs   []string
}

// Restaurant is the normalized record handed to the UI and to history.
// Built fresh on every search response, never mutated.
type Restaurant struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Rating         *float64       `json:"rating,omitempty"`
	PriceLevel     *int           `json:"price_level,omitempty"`
	Address        string         `json:"address"`
	Location       geo.Coordinate `json:"location"`
	DistanceMeters *int           `json:"distance_meters,omitempty"`
	PhotoURLs      []string       `json:"photo_urls"`
	OpenNow        *bool          `json:"open_now,omitempty"`
	ReviewCount    *int           `json:"review_count,omitempty"`
}

// Details extends a Restaurant with the place-details-only fields.
type Details struct {
	Restaurant
	Phone            string   `json:"phone,omitempty"`
	Website          string   `json:"website,omitempty"`
	WeekdayHours     []string `json:"weekday_hours,omitempty"`
	EditorialSummary string   `json:"editorial_summary,omitempty"`
}

// SearchRequest carries one place search.
type SearchRequest struct {
	Query        string
	Origin       geo.Coordinate
	RadiusMeters float64
	MaxResults   int
}
