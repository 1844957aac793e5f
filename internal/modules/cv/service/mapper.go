package service

import (
	"anoa.com/lebenslauf/internal/entity"
	"anoa.com/lebenslauf/internal/modules/cv/dto"
)

// unknownPersonalData keeps the response shape valid when the store holds no personal data.
func unknownPersonalData() dto.PersonalDataResponse {
	return dto.PersonalDataResponse{
		Name: "Unknown",
	}
}

func mapPersonalData(e *entity.PersonalData) dto.PersonalDataResponse {
	if e == nil {
		return unknownPersonalData()
	}
	return dto.PersonalDataResponse{
		AcademicTitle:   e.AcademicTitle,
		Name:            e.Name,
		Title:           e.Title,
		Email:           e.Email,
		Phone:           e.Phone,
		Address:         e.Address,
		City:            e.City,
		PostalCode:      e.PostalCode,
		Country:         e.Country,
		BirthDate:       dto.NewDate(e.BirthDate),
		Citizenship:     e.Citizenship,
		ProfileImageURL: e.ProfileImageURL,
	}
}

func mapProfile(e entity.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:          e.ID,
		Slug:        e.Slug,
		Name:        e.Name,
		Description: e.Description,
		IsDefault:   e.IsDefault,
	}
}

func mapFamilyMembers(rows []entity.FamilyMember) []dto.FamilyMemberResponse {
	out := make([]dto.FamilyMemberResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FamilyMemberResponse{
			ID:           r.ID,
			Relationship: r.Relationship,
			Profession:   r.Profession,
			BirthYear:    r.BirthYear,
		})
	}
	return out
}

func mapEducation(rows []entity.Education) []dto.EducationResponse {
	out := make([]dto.EducationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.EducationResponse{
			ID:          r.ID,
			Institution: r.Institution,
			Degree:      r.Degree,
			StartYear:   r.StartYear,
			EndYear:     r.EndYear,
			Description: r.Description,
		})
	}
	return out
}

func mapInternships(rows []entity.Internship) []dto.InternshipResponse {
	out := make([]dto.InternshipResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InternshipResponse{
			ID:          r.ID,
			Company:     r.Company,
			Role:        r.Role,
			Year:        r.Year,
			Month:       r.Month,
			EndMonth:    r.EndMonth,
			Description: r.Description,
		})
	}
	return out
}

func mapWorkExperience(e entity.WorkExperience) dto.WorkExperienceResponse {
	return dto.WorkExperienceResponse{
		ID:          e.ID,
		Company:     e.Company,
		Role:        e.Role,
		StartDate:   dto.NewDate(e.StartDate),
		EndDate:     dto.NewDatePtr(e.EndDate),
		Description: e.Description,
		IsCurrent:   e.IsCurrent,
	}
}

func mapSkill(e entity.Skill) dto.SkillResponse {
	return dto.SkillResponse{ID: e.ID, Name: e.Name}
}

func mapProject(e entity.Project) dto.ProjectResponse {
	technologies := make([]string, 0, len(e.Technologies))
	for _, t := range sortedBy(e.Technologies, func(t entity.ProjectTechnology) int { return t.SortOrder }) {
		technologies = append(technologies, t.Name)
	}

	functions := make([]string, 0, len(e.Functions))
	for _, f := range sortedBy(e.Functions, func(f entity.ProjectFunction) int { return f.SortOrder }) {
		functions = append(functions, f.Description)
	}

	aspects := make([]string, 0, len(e.TechnicalAspects))
	for _, a := range sortedBy(e.TechnicalAspects, func(a entity.ProjectTechnicalAspect) int { return a.SortOrder }) {
		aspects = append(aspects, a.Description)
	}

	subProjects := make([]dto.SubProjectResponse, 0, len(e.SubProjects))
	for _, sp := range sortedBy(e.SubProjects, func(sp entity.ProjectSubProject) int { return sp.SortOrder }) {
		spTech := make([]string, 0, len(sp.Technologies))
		for _, t := range sortedBy(sp.Technologies, func(t entity.ProjectSubProjectTechnology) int { return t.SortOrder }) {
			spTech = append(spTech, t.Name)
		}
		subProjects = append(subProjects, dto.SubProjectResponse{
			ID:           sp.ID,
			Name:         sp.Name,
			Description:  sp.Description,
			Framework:    sp.Framework,
			Technologies: spTech,
		})
	}

	return dto.ProjectResponse{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		Framework:        e.Framework,
		Technologies:     technologies,
		Functions:        functions,
		TechnicalAspects: aspects,
		SubProjects:      subProjects,
		AppStoreURL:      e.AppStoreURL,
		PlayStoreURL:     e.PlayStoreURL,
		AppGalleryURL:    e.AppGalleryURL,
		WebsiteURL:       e.WebsiteURL,
		ImageURL:         e.ImageURL,
		StartDate:        dto.NewDatePtr(e.StartDate),
		EndDate:          dto.NewDatePtr(e.EndDate),
		IsCurrent:        e.IsCurrent,
	}
}

// githubProfileBase is fixed: the CV always links the public github.com
// profile, even when the contribution scraper reads from another base URL.
const githubProfileBase = "https://github.com/"

// SummarizeContributions builds the contribution graph payload. Identity
// fields come from configuration, not from stored rows.
func SummarizeContributions(username string, rows []entity.GitHubContribution) dto.GitHubContributionsResponse {
	ordered := sortedByDate(rows)

	total := 0
	contributions := make([]dto.GitHubContributionResponse, 0, len(ordered))
	for _, c := range ordered {
		total += c.Count
		contributions = append(contributions, dto.GitHubContributionResponse{
			Date:       dto.NewDate(c.Date),
			Count:      c.Count,
			WeekNumber: c.WeekNumber,
			DayOfWeek:  c.DayOfWeek,
		})
	}

	return dto.GitHubContributionsResponse{
		Username:           username,
		ProfileURL:         githubProfileBase + username,
		TotalContributions: total,
		Contributions:      contributions,
	}
}
