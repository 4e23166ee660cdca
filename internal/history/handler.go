package history

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func requestUser(c *gin.Context) string {
	return normalizeUser(c.GetString("userID"))
}

// --------------------------------------------------
// GET /history/classifications
// --------------------------------------------------
func (h *Handler) ListClassifications(c *gin.Context) {
	entries := h.store.ListClassifications(c.Request.Context(), requestUser(c))
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// --------------------------------------------------
// DELETE /history/classifications/:id
// --------------------------------------------------
func (h *Handler) DeleteClassification(c *gin.Context) {
	h.store.DeleteClassification(c.Request.Context(), requestUser(c), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// --------------------------------------------------
// DELETE /history/classifications
// --------------------------------------------------
func (h *Handler) ClearClassifications(c *gin.Context) {
	h.store.ClearClassifications(c.Request.Context(), requestUser(c))
	c.JSON(http.StatusOK, gin.H{"message": "cleared"})
}

// --------------------------------------------------
// POST /history/restaurants
// --------------------------------------------------
func (h *Handler) RecordView(c *gin.Context) {
	var req struct {
		BusinessKey string   `json:"business_key"`
		Name        string   `json:"name"`
		Rating      *float64 `json:"rating"`
		PriceLevel  *int     `json:"price_level"`
		Address     string   `json:"address"`
		PhotoURLs   []string `json:"photo_urls"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.BusinessKey == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "business_key and name are required"})
		return
	}

	entry := h.store.AppendViewed(c.Request.Context(), requestUser(c), ViewedRestaurantEntry{
		BusinessKey: req.BusinessKey,
		Name:        req.Name,
		Rating:      req.Rating,
		PriceLevel:  req.PriceLevel,
		Address:     req.Address,
		PhotoURLs:   req.PhotoURLs,
	})

	c.JSON(http.StatusCreated, entry)
}

// --------------------------------------------------
// GET /history/restaurants
// --------------------------------------------------
func (h *Handler) ListViewed(c *gin.Context) {
	entries := h.store.ListViewed(c.Request.Context(), requestUser(c))
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// --------------------------------------------------
// DELETE /history/restaurants/:id
// --------------------------------------------------
func (h *Handler) DeleteViewed(c *gin.Context) {
	h.store.DeleteViewed(c.Request.Context(), requestUser(c), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// --------------------------------------------------
// DELETE /history/restaurants
// --------------------------------------------------
func (h *Handler) ClearViewed(c *gin.Context) {
	h.store.ClearViewed(c.Request.Context(), requestUser(c))
	c.JSON(http.StatusOK, gin.H{"message": "cleared"})
}
