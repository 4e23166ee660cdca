package recognition

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /recognize
// --------------------------------------------------
// Accepts either a base64 image or a typed food name. Missing both is a
// validation error; nothing is processed.
func (h *Handler) Recognize(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64"`
		FoodName    string `json:"food_name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := c.GetString("userID")

	var (
		result Result
		err    error
	)
	if req.ImageBase64 != "" {
		result, err = h.service.Identify(c.Request.Context(), userID, req.ImageBase64)
	} else {
		result, err = h.service.IdentifyManual(c.Request.Context(), userID, req.FoodName)
	}

	if err != nil {
		if errors.Is(err, ErrNoInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recognition failed, please retry"})
		return
	}

	c.JSON(http.StatusOK, result)
}
