package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Annotator is the image recognition contract the service depends on.
type Annotator interface {
	Annotate(ctx context.Context, imageBase64 string) (LabelSet, error)
}

// VisionClient calls the Google Cloud Vision REST API.
type VisionClient struct {
	apiKey string
	client *http.Client
}

func NewVisionClient() *VisionClient {
	return &VisionClient{
		apiKey: os.Getenv("VISION_API_KEY"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Annotate runs label detection, web detection and object localization on
// one image. A transport or parse failure returns an error; callers treat
// any error as "no labels", never as fatal.
func (v *VisionClient) Annotate(ctx context.Context, imageBase64 string) (LabelSet, error) {
	if v.apiKey == "" {
		return LabelSet{}, errors.New("missing VISION_API_KEY")
	}
	if imageBase64 == "" {
		return LabelSet{}, errors.New("empty image")
	}

	url := fmt.Sprintf(
		"https://vision.googleapis.com/v1/images:annotate?key=%s",
		v.apiKey,
	)

	payload := map[string]any{
		"requests": []map[string]any{
			{
				"image": map[string]string{"content": imageBase64},
				"features": []map[string]any{
					{"type": "LABEL_DETECTION", "maxResults": 15},
					{"type": "WEB_DETECTION", "maxResults": 10},
					{"type": "OBJECT_LOCALIZATION", "maxResults": 10},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return LabelSet{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return LabelSet{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return LabelSet{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return LabelSet{}, err
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[VISION] api error status=%d", resp.StatusCode)
		return LabelSet{}, fmt.Errorf("vision api error: %s", string(raw))
	}

	// Vision response shape, trimmed to the fields we read.
	var result struct {
		Responses []struct {
			LabelAnnotations []struct {
				Description string  `json:"description"`
				Score       float64 `json:"score"`
			} `json:"labelAnnotations"`
			WebDetection struct {
				WebEntities []struct {
					Description string  `json:"description"`
					Score       float64 `json:"score"`
				} `json:"webEntities"`
			} `json:"webDetection"`
			LocalizedObjectAnnotations []struct {
				Name  string  `json:"name"`
				Score float64 `json:"score"`
			} `json:"localizedObjectAnnotations"`
		} `json:"responses"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return LabelSet{}, err
	}

	if len(result.Responses) == 0 {
		return LabelSet{}, nil
	}

	r := result.Responses[0]
	var ls LabelSet

	for _, a := range r.LabelAnnotations {
		ls.Labels = append(ls.Labels, Label{
			Description: a.Description,
			Score:       a.Score,
			Source:      SourceLabel,
		})
	}
	for _, e := range r.WebDetection.WebEntities {
		if e.Description == "" {
			continue
		}
		ls.WebEntities = append(ls.WebEntities, Label{
			Description: e.Description,
			Score:       e.Score,
			Source:      SourceWebEntity,
		})
	}
	for _, o := range r.LocalizedObjectAnnotations {
		ls.Objects = append(ls.Objects, Label{
			Description: o.Name,
			Score:       o.Score,
			Source:      SourceObject,
		})
	}

	return ls, nil
}
