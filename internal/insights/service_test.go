package insights

import (
	"context"
	"fmt"
	"testing"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/history"
)

func newTestService() (*Service, *history.Store) {
	store := history.NewStore(history.NewMemoryKV())
	return NewService(store), store
}

func seedClassifications(store *history.Store, userID string, foods ...string) {
	for _, f := range foods {
		store.AppendClassification(context.Background(), userID, history.ClassificationEntry{
			FoodName: f,
			Labels:   []string{},
		})
	}
}

func TestComputeSnapshot_Empty(t *testing.T) {
	service, _ := newTestService()

	snap := service.ComputeSnapshot(context.Background(), "u1")

	if snap.TotalUniqueEntries != 0 {
		t.Errorf("expected 0 total entries, got %d", snap.TotalUniqueEntries)
	}
	if snap.AverageRating != 0 {
		t.Errorf("expected average rating 0, got %f", snap.AverageRating)
	}
	if snap.PreferredPriceLevel != nil {
		t.Errorf("expected nil preferred price, got %v", *snap.PreferredPriceLevel)
	}
	if len(snap.TopFoodCategories) != 0 {
		t.Errorf("expected no categories, got %v", snap.TopFoodCategories)
	}
}

func TestComputeSnapshot_CategoryCountingIsCaseInsensitiveAndDoubleCounts(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	// Food name and a matching label both count: "pizza" scores 2 here.
	store.AppendClassification(ctx, "u1", history.ClassificationEntry{
		FoodName: "Pizza",
		Labels:   []string{"pizza", "Italian food"},
	})
	store.AppendClassification(ctx, "u1", history.ClassificationEntry{
		FoodName: "PIZZA",
		Labels:   []string{},
	})

	snap := service.ComputeSnapshot(ctx, "u1")

	if len(snap.TopFoodCategories) == 0 {
		t.Fatal("expected categories")
	}
	top := snap.TopFoodCategories[0]
	if top.Name != "pizza" || top.Count != 3 {
		t.Errorf("expected pizza counted 3 times, got %s=%d", top.Name, top.Count)
	}
}

func TestComputeSnapshot_TopCategoriesCappedAtFive(t *testing.T) {
	service, store := newTestService()

	seedClassifications(store, "u1", "a", "b", "c", "d", "e", "f", "g")

	snap := service.ComputeSnapshot(context.Background(), "u1")
	if len(snap.TopFoodCategories) != 5 {
		t.Errorf("expected 5 categories, got %d", len(snap.TopFoodCategories))
	}
}

func TestComputeSnapshot_AverageRatingAndPriceMode(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	ratings := []float64{4.0, 5.0}
	prices := []int{2, 2, 3}
	for i := 0; i < 3; i++ {
		entry := history.ViewedRestaurantEntry{
			BusinessKey: fmt.Sprintf("place-%d", i),
			Name:        "R",
			PriceLevel:  &prices[i],
		}
		if i < 2 {
			entry.Rating = &ratings[i]
		}
		store.AppendViewed(ctx, "u1", entry)
	}

	snap := service.ComputeSnapshot(ctx, "u1")

	if snap.AverageRating != 4.5 {
		t.Errorf("expected average 4.5 over rated entries only, got %f", snap.AverageRating)
	}
	if snap.PreferredPriceLevel == nil || *snap.PreferredPriceLevel != 2 {
		t.Errorf("expected modal price 2, got %v", snap.PreferredPriceLevel)
	}
}

func TestHasEnoughData_ThresholdAtTen(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	// 5 classifications + 4 views = 9: not enough.
	seedClassifications(store, "u1", "a", "b", "c", "d", "e")
	for i := 0; i < 4; i++ {
		store.AppendViewed(ctx, "u1", history.ViewedRestaurantEntry{
			BusinessKey: fmt.Sprintf("place-%d", i),
			Name:        "R",
		})
	}

	if service.HasEnoughData(ctx, "u1") {
		t.Error("expected not enough data at 9 entries")
	}

	store.AppendViewed(ctx, "u1", history.ViewedRestaurantEntry{
		BusinessKey: "place-10",
		Name:        "R",
	})

	if !service.HasEnoughData(ctx, "u1") {
		t.Error("expected enough data at 10 entries")
	}
}

func TestRecommend_EmptyBelowThreshold(t *testing.T) {
	service, store := newTestService()

	seedClassifications(store, "u1", "pizza", "pizza", "sushi")

	recs := service.Recommend(context.Background(), "u1")
	if len(recs) != 0 {
		t.Errorf("expected no recommendations below threshold, got %d", len(recs))
	}
}

func TestRecommend_SortedAndBounded(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	seedClassifications(store, "u1",
		"pizza", "pizza", "pizza", "pizza",
		"sushi", "sushi",
		"ramen",
	)
	for i := 0; i < 3; i++ {
		store.AppendViewed(ctx, "u1", history.ViewedRestaurantEntry{
			BusinessKey: fmt.Sprintf("place-%d", i),
			Name:        "R",
		})
	}

	recs := service.Recommend(ctx, "u1")

	if len(recs) == 0 || len(recs) > 6 {
		t.Fatalf("expected 1-6 candidates, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].ConfidenceScore > recs[i-1].ConfidenceScore {
			t.Errorf("not sorted descending at %d: %d > %d", i, recs[i].ConfidenceScore, recs[i-1].ConfidenceScore)
		}
	}
	for _, r := range recs {
		if r.Query == "" || r.Reason == "" {
			t.Errorf("candidate missing query or reason: %+v", r)
		}
		if r.ConfidenceScore < 0 || r.ConfidenceScore > 100 {
			t.Errorf("confidence out of range: %d", r.ConfidenceScore)
		}
	}

	// Top category is pizza (count 4 -> 40); it should lead.
	if recs[0].Query != "pizza" {
		t.Errorf("expected pizza first, got %q", recs[0].Query)
	}
}

func TestRecommend_IncludesCuisineVariation(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		seedClassifications(store, "u1", "pizza")
	}

	recs := service.Recommend(ctx, "u1")

	found := false
	for _, r := range recs {
		if r.Query == "italian pasta" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected cuisine variation 'italian pasta' among %v", recs)
	}
}

func TestRecommend_ConfidenceCappedAt100(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		seedClassifications(store, "u1", "pizza")
	}

	recs := service.Recommend(ctx, "u1")
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	if recs[0].ConfidenceScore != 100 {
		t.Errorf("expected capped confidence 100, got %d", recs[0].ConfidenceScore)
	}
}
