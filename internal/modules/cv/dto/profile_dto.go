package dto

import "github.com/google/uuid"

type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsDefault   bool      `json:"isDefault"`
}

type ProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// CvRequest selects the profile; an empty slug means the default profile.
type CvRequest struct {
	ProfileSlug string `uri:"profileSlug" form:"profile" binding:"omitempty,max=100"`
}
