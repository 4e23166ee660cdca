package recognition

import (
	"context"
	"errors"
	"testing"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/history"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/storage"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockAnnotator struct {
	labelSet LabelSet
	err      error
}

func (m *mockAnnotator) Annotate(ctx context.Context, imageBase64 string) (LabelSet, error) {
	if m.err != nil {
		return LabelSet{}, m.err
	}
	return m.labelSet, nil
}

type mockUploader struct {
	url string
	err error
}

func (m *mockUploader) UploadBase64(ctx context.Context, key, data, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.url, nil
}

func newTestService(annotator Annotator, uploader storage.Uploader) (*Service, *history.Store) {
	store := history.NewStore(history.NewMemoryKV())
	return NewService(annotator, NewDisambiguator(nil), store, uploader), store
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestIdentify_MissingImage(t *testing.T) {
	service, _ := newTestService(&mockAnnotator{}, nil)

	_, err := service.Identify(context.Background(), "u1", "")
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestIdentify_RecordsClassification(t *testing.T) {
	service, store := newTestService(&mockAnnotator{
		labelSet: LabelSet{
			Labels: []Label{
				{Description: "Pizza", Score: 0.9, Source: SourceLabel},
				{Description: "food", Score: 0.99, Source: SourceLabel},
			},
		},
	}, nil)

	result, err := service.Identify(context.Background(), "u1", "aW1hZ2U=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FoodName != "Pizza" {
		t.Errorf("expected Pizza, got %q", result.FoodName)
	}

	entries := store.ListClassifications(context.Background(), "u1")
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	if entries[0].FoodName != "Pizza" {
		t.Errorf("history holds %q, want Pizza", entries[0].FoodName)
	}
	if entries[0].Confidence == nil || *entries[0].Confidence != 0.9 {
		t.Errorf("expected stored confidence 0.9, got %v", entries[0].Confidence)
	}
	if len(entries[0].Labels) != 2 {
		t.Errorf("expected the plain labels stored, got %v", entries[0].Labels)
	}
	if result.EntryID != entries[0].ID {
		t.Errorf("result entry id should match stored entry")
	}
}

func TestIdentify_VisionFailureDegradesToUnknown(t *testing.T) {
	service, store := newTestService(&mockAnnotator{err: errors.New("vision down")}, nil)

	result, err := service.Identify(context.Background(), "u1", "aW1hZ2U=")
	if err != nil {
		t.Fatalf("vision failure must not be fatal, got %v", err)
	}
	if result.FoodName != UnknownFood {
		t.Errorf("expected %q, got %q", UnknownFood, result.FoodName)
	}
	if result.Confidence != 0 {
		t.Errorf("expected confidence 0, got %f", result.Confidence)
	}

	// The unknown result is still recorded.
	if got := len(store.ListClassifications(context.Background(), "u1")); got != 1 {
		t.Errorf("expected 1 history entry, got %d", got)
	}
}

func TestIdentify_UploadFailureSkipsPreview(t *testing.T) {
	service, store := newTestService(&mockAnnotator{
		labelSet: LabelSet{
			Labels: []Label{{Description: "Ramen", Score: 0.8, Source: SourceLabel}},
		},
	}, &mockUploader{err: errors.New("bucket gone")})

	result, err := service.Identify(context.Background(), "u1", "aW1hZ2U=")
	if err != nil {
		t.Fatalf("upload failure must not be fatal, got %v", err)
	}
	if result.ImagePreviewRef != "" {
		t.Errorf("expected no preview ref, got %q", result.ImagePreviewRef)
	}

	entries := store.ListClassifications(context.Background(), "u1")
	if entries[0].ImagePreviewRef != "" {
		t.Errorf("expected no stored preview ref, got %q", entries[0].ImagePreviewRef)
	}
}

func TestIdentify_PreviewStored(t *testing.T) {
	service, store := newTestService(&mockAnnotator{
		labelSet: LabelSet{
			Labels: []Label{{Description: "Ramen", Score: 0.8, Source: SourceLabel}},
		},
	}, &mockUploader{url: "https://cdn.example.com/previews/x.jpg"})

	result, err := service.Identify(context.Background(), "u1", "aW1hZ2U=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ImagePreviewRef != "https://cdn.example.com/previews/x.jpg" {
		t.Errorf("unexpected preview ref %q", result.ImagePreviewRef)
	}

	entries := store.ListClassifications(context.Background(), "u1")
	if entries[0].ImagePreviewRef != result.ImagePreviewRef {
		t.Errorf("stored preview ref mismatch")
	}
}

func TestIdentifyManual_RecordsWithFullConfidence(t *testing.T) {
	service, store := newTestService(&mockAnnotator{}, nil)

	result, err := service.IdentifyManual(context.Background(), "u1", "shawarma")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FoodName != "shawarma" || result.Confidence != 1.0 {
		t.Errorf("unexpected result %+v", result)
	}

	entries := store.ListClassifications(context.Background(), "u1")
	if len(entries) != 1 || entries[0].FoodName != "shawarma" {
		t.Errorf("expected manual entry stored, got %v", entries)
	}
}

func TestIdentifyManual_MissingName(t *testing.T) {
	service, _ := newTestService(&mockAnnotator{}, nil)

	_, err := service.IdentifyManual(context.Background(), "u1", "")
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}
