package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkExperience struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Company     string     `gorm:"size:200;not null" json:"company"`
	Role        string     `gorm:"size:200;not null" json:"role"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	Description *string    `gorm:"type:text" json:"description"`
	IsCurrent   bool       `gorm:"not null;default:false" json:"is_current"`
	SortOrder   int        `gorm:"not null;default:0" json:"sort_order"`
}

func (w *WorkExperience) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID, err = uuid.NewV7()
	}
	return
}

type Education struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Institution string    `gorm:"size:200;not null" json:"institution"`
	Degree      string    `gorm:"size:200;not null" json:"degree"`
	StartYear   int       `gorm:"not null" json:"start_year"`
	EndYear     *int      `json:"end_year"`
	Description *string   `gorm:"type:text" json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
}

func (e *Education) TableName() string {
	return "education"
}

func (e *Education) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID, err = uuid.NewV7()
	}
	return
}

type Internship struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Company     string    `gorm:"size:200;not null" json:"company"`
	Role        string    `gorm:"size:200;not null" json:"role"`
	Year        int       `gorm:"not null" json:"year"`
	Month       *int      `json:"month"`
	EndMonth    *int      `json:"end_month"`
	Description *string   `gorm:"type:text" json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
}

func (i *Internship) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID, err = uuid.NewV7()
	}
	return
}

type FamilyMember struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Relationship string    `gorm:"size:50;not null" json:"relationship"`
	Profession   string    `gorm:"size:100;not null" json:"profession"`
	BirthYear    *int      `json:"birth_year"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
}

func (f *FamilyMember) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID, err = uuid.NewV7()
	}
	return
}

// GitHubContribution is one calendar day of the contribution graph.
// DayOfWeek uses 0 for Sunday.
type GitHubContribution struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date       time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Count      int       `gorm:"not null;default:0" json:"count"`
	WeekNumber int       `gorm:"not null" json:"week_number"`
	DayOfWeek  int       `gorm:"not null" json:"day_of_week"`
}

func (g *GitHubContribution) TableName() string {
	return "github_contributions"
}

func (g *GitHubContribution) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID, err = uuid.NewV7()
	}
	return
}
