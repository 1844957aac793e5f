package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID               uuid.UUID                `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string                   `gorm:"size:200;not null" json:"name"`
	Description      *string                  `gorm:"type:text" json:"description"`
	Framework        *string                  `gorm:"size:100" json:"framework"`
	SortOrder        int                      `gorm:"not null;default:0" json:"sort_order"`
	StartDate        *time.Time               `gorm:"type:date" json:"start_date"`
	EndDate          *time.Time               `gorm:"type:date" json:"end_date"`
	IsCurrent        bool                     `gorm:"not null;default:false" json:"is_current"`
	AppStoreURL      *string                  `gorm:"type:text" json:"app_store_url"`
	PlayStoreURL     *string                  `gorm:"type:text" json:"play_store_url"`
	AppGalleryURL    *string                  `gorm:"type:text" json:"app_gallery_url"`
	WebsiteURL       *string                  `gorm:"type:text" json:"website_url"`
	ImageURL         *string                  `gorm:"type:text" json:"image_url"`
	Technologies     []ProjectTechnology      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"technologies"`
	Functions        []ProjectFunction        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"functions"`
	TechnicalAspects []ProjectTechnicalAspect `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"technical_aspects"`
	SubProjects      []ProjectSubProject      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"sub_projects"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}

type ProjectTechnology struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
}

func (t *ProjectTechnology) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID, err = uuid.NewV7()
	}
	return
}

type ProjectFunction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
}

func (f *ProjectFunction) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID, err = uuid.NewV7()
	}
	return
}

type ProjectTechnicalAspect struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
}

func (a *ProjectTechnicalAspect) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID, err = uuid.NewV7()
	}
	return
}

// ProjectSubProject is owned by its project and removed together with it.
type ProjectSubProject struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID    uuid.UUID                     `gorm:"type:uuid;not null;index" json:"project_id"`
	Name         string                        `gorm:"size:200;not null" json:"name"`
	Description  *string                       `gorm:"type:text" json:"description"`
	Framework    *string                       `gorm:"size:100" json:"framework"`
	SortOrder    int                           `gorm:"not null;default:0" json:"sort_order"`
	Technologies []ProjectSubProjectTechnology `gorm:"foreignKey:SubProjectID;constraint:OnDelete:CASCADE" json:"technologies"`
}

func (s *ProjectSubProject) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID, err = uuid.NewV7()
	}
	return
}

type ProjectSubProjectTechnology struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"sub_project_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
}

func (t *ProjectSubProjectTechnology) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID, err = uuid.NewV7()
	}
	return
}
