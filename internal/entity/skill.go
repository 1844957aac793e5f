package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	Skills    []Skill   `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"skills"`
}

func (c *SkillCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

type Skill struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID, err = uuid.NewV7()
	}
	return
}
