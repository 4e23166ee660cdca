package llm

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/insights"
)

// ParseRecommendations turns raw model output into recommendations.
// Malformed output is treated as absence of data: the answer is an empty
// list, never an error.
func ParseRecommendations(raw string) []insights.AIRecommendation {
	content := strings.TrimSpace(raw)

	// Models wrap JSON in fences despite instructions; take the first
	// [ through the last ].
	if start, end := strings.Index(content, "["), strings.LastIndex(content, "]"); start != -1 && end > start {
		content = content[start : end+1]
	}

	var recs []insights.AIRecommendation
	if err := json.Unmarshal([]byte(content), &recs); err != nil {
		log.Printf("[LLM] unparsable recommendation output, treating as empty: %v", err)
		return []insights.AIRecommendation{}
	}

	kept := recs[:0]
	for _, r := range recs {
		if r.FoodName == "" {
			continue
		}
		if r.Confidence < 0 {
			r.Confidence = 0
		}
		if r.Confidence > 100 {
			r.Confidence = 100
		}
		kept = append(kept, r)
	}

	return kept
}

// Recommender adapts a raw Client to the insight engine's contract.
type Recommender struct {
	client Client
}

func NewRecommender(client Client) *Recommender {
	return &Recommender{client: client}
}

func (r *Recommender) Recommend(ctx context.Context, snapshot insights.Snapshot) ([]insights.AIRecommendation, error) {
	raw, err := r.client.GenerateRecommendations(ctx, BuildRecommendationPrompt(snapshot))
	if err != nil {
		return nil, err
	}
	return ParseRecommendations(raw), nil
}
