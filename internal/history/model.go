package history

import "time"

// ClassificationEntry records one recognized (or manually entered) food.
type ClassificationEntry struct {
	ID              string    `json:"id"`
	FoodName        string    `json:"food_name"`
	Confidence      *float64  `json:"confidence,omitempty"`
	Labels          []string  `json:"labels"`
	ImagePreviewRef string    `json:"image_preview_ref,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ViewedRestaurantEntry records one restaurant the user opened.
// BusinessKey is the provider's stable place id; ID is regenerated on every
// view, so BusinessKey is the only key that survives repeat views.
type ViewedRestaurantEntry struct {
	ID          string    `json:"id"`
	BusinessKey string    `json:"business_key"`
	Name        string    `json:"name"`
	Rating      *float64  `json:"rating,omitempty"`
	PriceLevel  *int      `json:"price_level,omitempty"`
	Address     string    `json:"address"`
	PhotoURLs   []string  `json:"photo_urls"`
	CreatedAt   time.Time `json:"created_at"`
}
