package places

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/geo"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /restaurants/search?query=&lat=&lng=&radius=&limit=&sort=&dir=
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("query")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}

	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "5000"), 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	results, err := h.service.Search(c.Request.Context(), SearchRequest{
		Query:        query,
		Origin:       geo.Coordinate{Lat: lat, Lng: lng},
		RadiusMeters: radius,
		MaxResults:   limit,
	})
	if err != nil {
		if errors.Is(err, ErrMissingQuery) || errors.Is(err, ErrMissingOrigin) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "restaurant search is temporarily unavailable, please retry",
		})
		return
	}

	SortRestaurants(results, c.Query("sort"), c.Query("dir"))

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// --------------------------------------------------
// GET /restaurants/:id?lat=&lng=
// --------------------------------------------------
func (h *Handler) Details(c *gin.Context) {
	placeID := c.Param("id")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "place id is required"})
		return
	}

	var origin *geo.Coordinate
	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat == nil && errLng == nil {
			origin = &geo.Coordinate{Lat: lat, Lng: lng}
		}
	}

	details, err := h.service.Details(c.Request.Context(), placeID, origin)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "place details are temporarily unavailable, please retry",
		})
		return
	}

	c.JSON(http.StatusOK, details)
}
