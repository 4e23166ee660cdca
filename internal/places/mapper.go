package places

import (
	"math"
	"sort"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/geo"
)

// MapResults converts raw provider results into normalized restaurant
// records, attaching the computed distance from origin. Provider order is
// preserved; sorting is a presentation concern (see SortRestaurants).
func MapResults(raw []ProviderPlace, origin geo.Coordinate) []Restaurant {
	results := make([]Restaurant, 0, len(raw))

	for _, p := range raw {
		r := Restaurant{
			ID:          p.ID,
			Name:        p.DisplayName,
			Rating:      p.Rating,
			Address:     p.Address,
			Location:    p.Location,
			OpenNow:     p.OpenNow,
			ReviewCount: p.ReviewCount,
			PhotoURLs:   []string{},
		}

		if r.Name == "" {
			r.Name = "Unknown Restaurant"
		}
		if r.Address == "" {
			r.Address = "Address not available"
		}

		if p.PriceLevel != "" {
			level := NormalizePriceLevel(p.PriceLevel)
			r.PriceLevel = &level
		}

		distance := int(math.Round(geo.Haversine(origin, p.Location)))
		r.DistanceMeters = &distance

		for _, ref := range p.PhotoRefs {
			if url := PhotoURL(ref); url != "" {
				r.PhotoURLs = append(r.PhotoURLs, url)
			}
		}

		results = append(results, r)
	}

	return results
}

// SortRestaurants stable-sorts in place. by is "rating" or "price"; dir is
// "asc" or "desc". Rating defaults to descending, price to ascending.
// Records missing the sort field sink to the end.
func SortRestaurants(list []Restaurant, by, dir string) {
	switch by {
	case "rating":
		desc := dir != "asc"
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i].Rating, list[j].Rating
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			if desc {
				return *a > *b
			}
			return *a < *b
		})
	case "price":
		desc := dir == "desc"
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i].PriceLevel, list[j].PriceLevel
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			if desc {
				return *a > *b
			}
			return *a < *b
		})
	}
}
