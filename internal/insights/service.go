package insights

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/history"
)

// minEntriesForRecommendations is the fixed history threshold below which
// no recommendations are produced.
const minEntriesForRecommendations = 10

const maxTopCategories = 5
const maxCandidates = 6

// cuisineVariations maps a frequent category to a related query, so one
// candidate always nudges the user sideways instead of repeating them.
var cuisineVariations = map[string]string{
	"pizza":    "italian pasta",
	"sushi":    "japanese ramen",
	"burger":   "gourmet burger",
	"taco":     "mexican street food",
	"ramen":    "japanese izakaya",
	"curry":    "indian thali",
	"pasta":    "italian risotto",
	"salad":    "mediterranean bowl",
	"sandwich": "deli subs",
	"steak":    "brazilian steakhouse",
	"soup":     "vietnamese pho",
	"noodle":   "hand-pulled noodles",
}

type Service struct {
	store *history.Store
}

func NewService(store *history.Store) *Service {
	return &Service{store: store}
}

// ComputeSnapshot aggregates both history logs. Category counting is
// case-insensitive and counts every classification's food name AND every
// entry in its label list; a label equal to the food name counts twice,
// which double-weights confirmed categories on purpose.
func (s *Service) ComputeSnapshot(ctx context.Context, userID string) Snapshot {
	classifications := s.store.ListClassifications(ctx, userID)
	viewed := s.store.ListViewed(ctx, userID)

	counts := make(map[string]int)
	for _, c := range classifications {
		if name := strings.ToLower(strings.TrimSpace(c.FoodName)); name != "" {
			counts[name]++
		}
		for _, label := range c.Labels {
			if l := strings.ToLower(strings.TrimSpace(label)); l != "" {
				counts[l]++
			}
		}
	}

	ranked := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, CategoryCount{Name: name, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > maxTopCategories {
		ranked = ranked[:maxTopCategories]
	}

	ratingSum := 0.0
	ratingCount := 0
	priceCounts := make(map[int]int)
	for _, v := range viewed {
		if v.Rating != nil {
			ratingSum += *v.Rating
			ratingCount++
		}
		if v.PriceLevel != nil {
			priceCounts[*v.PriceLevel]++
		}
	}

	averageRating := 0.0
	if ratingCount > 0 {
		averageRating = ratingSum / float64(ratingCount)
	}

	snapshot := Snapshot{
		ClassificationCount: len(classifications),
		ViewedCount:         len(viewed),
		TotalUniqueEntries:  len(classifications) + len(viewed),
		TopFoodCategories:   ranked,
		AverageRating:       averageRating,
	}

	// Modal price level; ties break toward the lowest level.
	if len(priceCounts) > 0 {
		best, bestCount := 0, -1
		for level := 0; level <= 4; level++ {
			if priceCounts[level] > bestCount {
				best, bestCount = level, priceCounts[level]
			}
		}
		snapshot.PreferredPriceLevel = &best
	}

	return snapshot
}

// HasEnoughData reports whether recommendations should run at all.
func (s *Service) HasEnoughData(ctx context.Context, userID string) bool {
	snap := s.ComputeSnapshot(ctx, userID)
	return snap.TotalUniqueEntries >= minEntriesForRecommendations
}

// Recommend produces up to six deterministic candidates from the
// snapshot: the user's top categories, one cuisine variation, and
// rating/price signals when present. Empty until the history threshold is
// crossed.
func (s *Service) Recommend(ctx context.Context, userID string) []Candidate {
	snap := s.ComputeSnapshot(ctx, userID)
	if snap.TotalUniqueEntries < minEntriesForRecommendations {
		return []Candidate{}
	}

	var candidates []Candidate

	topN := len(snap.TopFoodCategories)
	if topN > 3 {
		topN = 3
	}
	for _, cat := range snap.TopFoodCategories[:topN] {
		candidates = append(candidates, Candidate{
			Query:           cat.Name,
			Reason:          fmt.Sprintf("You've explored %s %d times recently", cat.Name, cat.Count),
			ConfidenceScore: capScore(cat.Count * 10),
		})
	}

	if len(snap.TopFoodCategories) > 0 {
		top := snap.TopFoodCategories[0]
		if variation, ok := cuisineVariations[top.Name]; ok {
			candidates = append(candidates, Candidate{
				Query:           variation,
				Reason:          fmt.Sprintf("Since you like %s, %s could be your next favorite", top.Name, variation),
				ConfidenceScore: min(top.Count*7, 85),
			})
		}

		if snap.AverageRating >= 4.0 {
			candidates = append(candidates, Candidate{
				Query:           "top rated " + top.Name,
				Reason:          "You tend to pick highly rated spots",
				ConfidenceScore: 55,
			})
		}

		if snap.PreferredPriceLevel != nil {
			candidates = append(candidates, Candidate{
				Query:           priceQuery(*snap.PreferredPriceLevel) + " " + top.Name,
				Reason:          "Matched to your usual price range",
				ConfidenceScore: 50,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ConfidenceScore > candidates[j].ConfidenceScore
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	return candidates
}

func capScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}

func priceQuery(level int) string {
	switch {
	case level <= 1:
		return "cheap eats"
	case level == 2:
		return "casual"
	default:
		return "upscale"
	}
}
