package places

import (
	"testing"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/geo"
)

func TestMapResults_Placeholders(t *testing.T) {
	origin := geo.Coordinate{Lat: 40.7128, Lng: -74.0060}

	results := MapResults([]ProviderPlace{
		{ID: "p1", Location: origin},
	}, origin)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.Name != "Unknown Restaurant" {
		t.Errorf("expected name placeholder, got %q", r.Name)
	}
	if r.Address != "Address not available" {
		t.Errorf("expected address placeholder, got %q", r.Address)
	}
	if r.DistanceMeters == nil || *r.DistanceMeters != 0 {
		t.Errorf("expected distance 0 for same point, got %v", r.DistanceMeters)
	}
	if r.PhotoURLs == nil || len(r.PhotoURLs) != 0 {
		t.Errorf("expected empty photo list, got %v", r.PhotoURLs)
	}
}

func TestMapResults_PriceAndDistance(t *testing.T) {
	origin := geo.Coordinate{Lat: 40.7128, Lng: -74.0060}
	rating := 4.5

	results := MapResults([]ProviderPlace{
		{
			ID:          "p1",
			DisplayName: "Mock Diner",
			Address:     "1 Main St",
			Location:    geo.Coordinate{Lat: 40.7628, Lng: -74.0060}, // ~5.6 km north
			Rating:      &rating,
			PriceLevel:  "PRICE_LEVEL_EXPENSIVE",
		},
		{
			ID:          "p2",
			DisplayName: "No Price Cafe",
			Address:     "2 Main St",
			Location:    origin,
		},
	}, origin)

	if results[0].PriceLevel == nil || *results[0].PriceLevel != 3 {
		t.Errorf("expected normalized price 3, got %v", results[0].PriceLevel)
	}
	if results[1].PriceLevel != nil {
		t.Errorf("expected nil price for missing enum, got %v", results[1].PriceLevel)
	}

	d := *results[0].DistanceMeters
	if d < 5400 || d > 5700 {
		t.Errorf("expected ~5560 m, got %d", d)
	}

	// Provider order preserved.
	if results[0].ID != "p1" || results[1].ID != "p2" {
		t.Errorf("provider order not preserved: %s, %s", results[0].ID, results[1].ID)
	}
}

func TestSortRestaurants_RatingDesc(t *testing.T) {
	r1, r2 := 3.5, 4.8
	list := []Restaurant{
		{ID: "a", Rating: &r1},
		{ID: "b", Rating: &r2},
		{ID: "c"}, // unrated sinks to the end
	}

	SortRestaurants(list, "rating", "")

	if list[0].ID != "b" || list[1].ID != "a" || list[2].ID != "c" {
		t.Errorf("unexpected order: %s, %s, %s", list[0].ID, list[1].ID, list[2].ID)
	}
}

func TestSortRestaurants_PriceAscByDefault(t *testing.T) {
	p1, p2, p3 := 3, 1, 2
	list := []Restaurant{
		{ID: "a", PriceLevel: &p1},
		{ID: "b", PriceLevel: &p2},
		{ID: "c", PriceLevel: &p3},
	}

	SortRestaurants(list, "price", "")

	if list[0].ID != "b" || list[1].ID != "c" || list[2].ID != "a" {
		t.Errorf("unexpected order: %s, %s, %s", list[0].ID, list[1].ID, list[2].ID)
	}

	SortRestaurants(list, "price", "desc")
	if list[0].ID != "a" {
		t.Errorf("expected most expensive first, got %s", list[0].ID)
	}
}
