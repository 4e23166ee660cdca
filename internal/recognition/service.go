package recognition

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/history"
	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/storage"
)

var ErrNoInput = errors.New("either an image or a food name is required")

// Result is what one recognition call hands back to the client: the
// identification plus the history entry it produced.
type Result struct {
	Identification
	Labels          []string `json:"labels"`
	ImagePreviewRef string   `json:"image_preview_ref,omitempty"`
	EntryID         string   `json:"entry_id"`
}

type Service struct {
	annotator     Annotator
	disambiguator *Disambiguator
	store         *history.Store
	uploader      storage.Uploader
}

// NewService wires the recognition pipeline. uploader may be nil; photo
// previews are then skipped.
func NewService(annotator Annotator, disambiguator *Disambiguator, store *history.Store, uploader storage.Uploader) *Service {
	return &Service{
		annotator:     annotator,
		disambiguator: disambiguator,
		store:         store,
		uploader:      uploader,
	}
}

// Identify runs the full pipeline on one image: annotate, disambiguate,
// store. A vision failure is treated as "no labels", never as fatal; the
// disambiguator's fallback chain produces a well-formed answer regardless.
func (s *Service) Identify(ctx context.Context, userID, imageBase64 string) (Result, error) {
	if imageBase64 == "" {
		return Result{}, ErrNoInput
	}

	ls, err := s.annotator.Annotate(ctx, imageBase64)
	if err != nil {
		log.Printf("[RECOGNIZE] vision failed, continuing with no labels: %v", err)
		ls = LabelSet{}
	}

	ident := s.disambiguator.Disambiguate(ls)

	previewRef := ""
	if s.uploader != nil {
		owner := userID
		if owner == "" {
			owner = history.GuestUser
		}
		key := fmt.Sprintf("previews/%s/%s.jpg", owner, uuid.New().String())
		url, upErr := s.uploader.UploadBase64(ctx, key, imageBase64, "image/jpeg")
		if upErr != nil {
			log.Printf("[RECOGNIZE] preview upload failed: %v", upErr)
		} else {
			previewRef = url
		}
	}

	labels := make([]string, 0, len(ls.Labels))
	for _, l := range ls.Labels {
		labels = append(labels, l.Description)
	}

	confidence := ident.Confidence
	entry := s.store.AppendClassification(ctx, userID, history.ClassificationEntry{
		FoodName:        ident.FoodName,
		Confidence:      &confidence,
		Labels:          labels,
		ImagePreviewRef: previewRef,
	})

	return Result{
		Identification:  ident,
		Labels:          labels,
		ImagePreviewRef: previewRef,
		EntryID:         entry.ID,
	}, nil
}

// IdentifyManual records a food name the user typed instead of
// photographing. Confidence is 1: the user said so.
func (s *Service) IdentifyManual(ctx context.Context, userID, foodName string) (Result, error) {
	if foodName == "" {
		return Result{}, ErrNoInput
	}

	confidence := 1.0
	entry := s.store.AppendClassification(ctx, userID, history.ClassificationEntry{
		FoodName:   foodName,
		Confidence: &confidence,
		Labels:     []string{},
	})

	return Result{
		Identification: Identification{FoodName: foodName, Confidence: confidence},
		Labels:         []string{},
		EntryID:        entry.ID,
	}, nil
}
