package request_models

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

type RecommendationQuery struct {
	City      string `form:"city" binding:"required"`
	Interests string `form:"interests"`
	K         int    `form:"k"`
}
