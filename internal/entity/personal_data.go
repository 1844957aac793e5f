package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonalData is the per-profile framing of one person's contact data.
type PersonalData struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"profile_id"`
	Profile         Profile   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AcademicTitle   *string   `gorm:"size:50" json:"academic_title"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	Email           string    `gorm:"size:200;not null" json:"email"`
	Phone           string    `gorm:"size:50;not null" json:"phone"`
	Address         string    `gorm:"size:200;not null" json:"address"`
	City            string    `gorm:"size:100;not null" json:"city"`
	PostalCode      string    `gorm:"size:20;not null" json:"postal_code"`
	Country         string    `gorm:"size:100;not null" json:"country"`
	BirthDate       time.Time `gorm:"type:date;not null" json:"birth_date"`
	Citizenship     string    `gorm:"size:100;not null" json:"citizenship"`
	ProfileImageURL *string   `gorm:"type:text" json:"profile_image_url"`
}

func (p *PersonalData) TableName() string {
	return "personal_data"
}

func (p *PersonalData) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}
