package dto

import "github.com/google/uuid"

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// OverlayURI addresses one overlay row by profile slug and base entity id.
type OverlayURI struct {
	Slug     string `uri:"slug" binding:"required,max=100"`
	EntityID string `uri:"entityId" binding:"required,uuid"`
}

type SkillOverlayInput struct {
	SortOrder     int  `json:"sort_order" binding:"min=0"`
	IsHighlighted bool `json:"is_highlighted"`
}

// DescriptionOverride nil clears the override; the base description shows again.
type DescribedOverlayInput struct {
	SortOrder           int     `json:"sort_order" binding:"min=0"`
	IsHighlighted       bool    `json:"is_highlighted"`
	DescriptionOverride *string `json:"description_override" binding:"omitempty,max=4000"`
}

type OverlayResponse struct {
	ProfileID           uuid.UUID `json:"profile_id"`
	EntityID            uuid.UUID `json:"entity_id"`
	SortOrder           int       `json:"sort_order"`
	IsHighlighted       bool      `json:"is_highlighted"`
	DescriptionOverride *string   `json:"description_override,omitempty"`
}

type ProfileImageResponse struct {
	ProfileImageURL string `json:"profile_image_url"`
}

type ReindexResponse struct {
	Indexed int `json:"indexed"`
}

type PruneResponse struct {
	Skills          int64 `json:"skills"`
	Projects        int64 `json:"projects"`
	WorkExperiences int64 `json:"work_experiences"`
}

func (p PruneResponse) Total() int64 {
	return p.Skills + p.Projects + p.WorkExperiences
}
