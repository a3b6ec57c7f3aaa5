package response_models

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

type Recommendation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Category    string  `json:"category"`
	Budget      string  `json:"budget"`
	BestTime    string  `json:"best_time"`
	Duration    float64 `json:"duration_hours"`
	Description string  `json:"description"`
	MapsURL     string  `json:"maps_url,omitempty"`
}
