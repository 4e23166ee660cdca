package insights

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AIRecommender is the LLM recommendation contract. Implementations must
// tolerate malformed model output by returning an empty list.
type AIRecommender interface {
	Recommend(ctx context.Context, snapshot Snapshot) ([]AIRecommendation, error)
}

type Handler struct {
	service *Service
	ai      AIRecommender
}

// NewHandler wires the insight routes. ai may be nil; the AI route then
// always answers with an empty list.
func NewHandler(service *Service, ai AIRecommender) *Handler {
	return &Handler{service: service, ai: ai}
}

func requestUser(c *gin.Context) string {
	if id := c.GetString("userID"); id != "" {
		return id
	}
	return "guest"
}

// --------------------------------------------------
// GET /insights
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	snapshot := h.service.ComputeSnapshot(c.Request.Context(), requestUser(c))
	c.JSON(http.StatusOK, snapshot)
}

// --------------------------------------------------
// GET /recommendations
// --------------------------------------------------
func (h *Handler) Recommendations(c *gin.Context) {
	candidates := h.service.Recommend(c.Request.Context(), requestUser(c))
	c.JSON(http.StatusOK, gin.H{"recommendations": candidates})
}

// --------------------------------------------------
// GET /recommendations/ai
// --------------------------------------------------
// The AI path is best-effort: any failure degrades to an empty list so
// the UI never blocks on the model.
func (h *Handler) AIRecommendations(c *gin.Context) {
	userID := requestUser(c)

	if h.ai == nil || !h.service.HasEnoughData(c.Request.Context(), userID) {
		c.JSON(http.StatusOK, gin.H{"recommendations": []AIRecommendation{}})
		return
	}

	snapshot := h.service.ComputeSnapshot(c.Request.Context(), userID)

	recs, err := h.ai.Recommend(c.Request.Context(), snapshot)
	if err != nil {
		log.Printf("[INSIGHTS] ai recommendations failed: %v", err)
		recs = []AIRecommendation{}
	}
	if recs == nil {
		recs = []AIRecommendation{}
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
