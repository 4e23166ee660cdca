package insights

// CategoryCount is one ranked food-category frequency.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Snapshot aggregates a user's stored history. Derived on demand, never
// persisted.
type Snapshot struct {
	ClassificationCount int             `json:"classification_count"`
	ViewedCount         int             `json:"viewed_count"`
	TotalUniqueEntries  int             `json:"total_unique_entries"`
	TopFoodCategories   []CategoryCount `json:"top_food_categories"`
	AverageRating       float64         `json:"average_rating"`
	PreferredPriceLevel *int            `json:"preferred_price_level,omitempty"`
}

// Candidate is one heuristic recommendation: a search query, a
// human-readable reason, and a 0-100 confidence.
type Candidate struct {
	Query           string `json:"query"`
	Reason          string `json:"reason"`
	ConfidenceScore int    `json:"confidence_score"`
}

// AIRecommendation is what the LLM recommendation path returns.
type AIRecommendation struct {
	FoodName    string `json:"food_name"`
	Reason      string `json:"reason"`
	CuisineType string `json:"cuisine_type"`
	Confidence  int    `json:"confidence"`
}
