package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is a named CV variant. Exactly one profile is expected to carry IsDefault.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug        string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	IsDefault   bool      `gorm:"not null;default:false;index" json:"is_default"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}

// ProfileSkill marks a skill as visible under a profile. Overlay rows carry no
// association to the base entity; deleting the base row leaves them orphaned.
type ProfileSkill struct {
	ProfileID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"profile_id"`
	SkillID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"skill_id"`
	SortOrder     int       `gorm:"not null;default:0" json:"sort_order"`
	IsHighlighted bool      `gorm:"not null;default:false" json:"is_highlighted"`
}

type ProfileProject struct {
	ProfileID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"profile_id"`
	ProjectID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	SortOrder           int       `gorm:"not null;default:0" json:"sort_order"`
	IsHighlighted       bool      `gorm:"not null;default:false" json:"is_highlighted"`
	DescriptionOverride *string   `gorm:"type:text" json:"description_override"`
}

type ProfileWorkExperience struct {
	ProfileID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"profile_id"`
	WorkExperienceID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"work_experience_id"`
	SortOrder           int       `gorm:"not null;default:0" json:"sort_order"`
	IsHighlighted       bool      `gorm:"not null;default:false" json:"is_highlighted"`
	DescriptionOverride *string   `gorm:"type:text" json:"description_override"`
}
