package dto

import "github.com/google/uuid"

// CvResponse is the aggregate consumed by the web client and the document exporters.
// Field names are shared with existing clients and must stay stable.
type CvResponse struct {
	PersonalData    PersonalDataResponse        `json:"personalData"`
	FamilyMembers   []FamilyMemberResponse      `json:"familyMembers"`
	Education       []EducationResponse         `json:"education"`
	Internships     []InternshipResponse        `json:"internships"`
	WorkExperience  []WorkExperienceResponse    `json:"workExperience"`
	SkillCategories []SkillCategoryResponse     `json:"skillCategories"`
	Projects        []ProjectResponse           `json:"projects"`
	GitHub          GitHubContributionsResponse `json:"gitHub"`
}

type PersonalDataResponse struct {
	AcademicTitle   *string `json:"academicTitle"`
	Name            string  `json:"name"`
	Title           string  `json:"title"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	PostalCode      string  `json:"postalCode"`
	Country         string  `json:"country"`
	BirthDate       Date    `json:"birthDate"`
	Citizenship     string  `json:"citizenship"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type FamilyMemberResponse struct {
	ID           uuid.UUID `json:"id"`
	Relationship string    `json:"relationship"`
	Profession   string    `json:"profession"`
	BirthYear    *int      `json:"birthYear"`
}

type EducationResponse struct {
	ID          uuid.UUID `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	StartYear   int       `json:"startYear"`
	EndYear     *int      `json:"endYear"`
	Description *string   `json:"description"`
}

type InternshipResponse struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Year        int       `json:"year"`
	Month       *int      `json:"month"`
	EndMonth    *int      `json:"endMonth"`
	Description *string   `json:"description"`
}

type WorkExperienceResponse struct {
	ID            uuid.UUID `json:"id"`
	Company       string    `json:"company"`
	Role          string    `json:"role"`
	StartDate     Date      `json:"startDate"`
	EndDate       *Date     `json:"endDate"`
	Description   *string   `json:"description"`
	IsCurrent     bool      `json:"isCurrent"`
	IsHighlighted bool      `json:"isHighlighted"`
}

type SkillCategoryResponse struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Skills []SkillResponse `json:"skills"`
}

type SkillResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IsHighlighted bool      `json:"isHighlighted"`
}

type ProjectResponse struct {
	ID               uuid.UUID            `json:"id"`
	Name             string               `json:"name"`
	Description      *string              `json:"description"`
	Framework        *string              `json:"framework"`
	Technologies     []string             `json:"technologies"`
	Functions        []string             `json:"functions"`
	TechnicalAspects []string             `json:"technicalAspects"`
	SubProjects      []SubProjectResponse `json:"subProjects"`
	AppStoreURL      *string              `json:"appStoreUrl"`
	PlayStoreURL     *string              `json:"playStoreUrl"`
	AppGalleryURL    *string              `json:"appGalleryUrl"`
	WebsiteURL       *string              `json:"websiteUrl"`
	ImageURL         *string              `json:"imageUrl"`
	StartDate        *Date                `json:"startDate"`
	EndDate          *Date                `json:"endDate"`
	IsCurrent        bool                 `json:"isCurrent"`
	IsHighlighted    bool                 `json:"isHighlighted"`
}

type SubProjectResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Framework    *string   `json:"framework"`
	Technologies []string  `json:"technologies"`
}

type GitHubContributionsResponse struct {
	Username           string                       `json:"username"`
	ProfileURL         string                       `json:"profileUrl"`
	TotalContributions int                          `json:"totalContributions"`
	Contributions      []GitHubContributionResponse `json:"contributions"`
}

type GitHubContributionResponse struct {
	Date       Date `json:"date"`
	Count      int  `json:"count"`
	WeekNumber int  `json:"weekNumber"`
	DayOfWeek  int  `json:"dayOfWeek"`
}
