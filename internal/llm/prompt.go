package llm

import (
	"encoding/json"

	"github.com/OsaidZaher/webDev-Y3-FoodApp-sub000/internal/insights"
)

func BuildRecommendationPrompt(snapshot insights.Snapshot) string {
	stats, _ := json.Marshal(snapshot)

	return `
You are a food recommendation engine.

Your task:
- Suggest foods the user should try next, based on their dining history.
- Output MUST be valid JSON.
- Output MUST start with [ and end with ].
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

If you cannot produce recommendations, return this exact JSON:
[]

Required JSON schema:
[
  {
    "food_name": "string",
    "reason": "string",
    "cuisine_type": "string",
    "confidence": number between 0 and 100
  }
]

Return at most 6 recommendations.

USER DINING HISTORY STATS:
` + string(stats)
}
