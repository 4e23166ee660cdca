package places

import (
	"context"
	"errors"
	"math"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/geo"
)

var (
	ErrMissingQuery  = errors.New("search query is required")
	ErrMissingOrigin = errors.New("origin coordinates are required")
)

type Service struct {
	client SearchClient
}

func NewService(client SearchClient) *Service {
	return &Service{client: client}
}

// Search finds restaurants matching the query near origin and returns
// them normalized, in provider order.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]Restaurant, error) {
	if req.Query == "" {
		return nil, ErrMissingQuery
	}
	if req.Origin.Lat < -90 || req.Origin.Lat > 90 ||
		req.Origin.Lng < -180 || req.Origin.Lng > 180 {
		return nil, ErrMissingOrigin
	}

	raw, err := s.client.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	return MapResults(raw, req.Origin), nil
}

// Details fetches the full record for one place. When an origin is given,
// distance is computed from it.
func (s *Service) Details(ctx context.Context, placeID string, origin *geo.Coordinate) (*Details, error) {
	details, err := s.client.Details(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if origin != nil {
		d := int(math.Round(geo.Haversine(*origin, details.Location)))
		details.DistanceMeters = &d
	}

	return details, nil
}
