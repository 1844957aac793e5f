package dto

type SearchProjectsRequest struct {
	Query string `form:"q" binding:"required,min=1,max=200"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

type ProjectHit struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Framework    string   `json:"framework"`
	Technologies []string `json:"technologies"`
	IsCurrent    bool     `json:"isCurrent"`
}

type SearchProjectsResponse struct {
	Query              string       `json:"query"`
	Hits               []ProjectHit `json:"hits"`
	EstimatedTotalHits int64        `json:"estimatedTotalHits"`
}
