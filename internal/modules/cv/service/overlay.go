package service

import (
	"cmp"
	"slices"

	"anoa.com/lebenslauf/internal/entity"
	"anoa.com/lebenslauf/internal/modules/cv/dto"
	"github.com/google/uuid"
)

// The functions in this file project shared base collections through a
// profile's overlay rows. They are pure: the inputs are never mutated and
// overlay rows pointing at missing base entities are skipped.

// sortedBy returns a stably sorted copy; equal keys keep their input order.
func sortedBy[T any](items []T, key func(T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

func sortedByDate(rows []entity.GitHubContribution) []entity.GitHubContribution {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b entity.GitHubContribution) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// SkillCategoriesView lists every category and skill in base order, nothing highlighted.
// Categories without skills are kept.
func SkillCategoriesView(categories []entity.SkillCategory) []dto.SkillCategoryResponse {
	out := make([]dto.SkillCategoryResponse, 0, len(categories))
	for _, category := range sortedBy(categories, func(c entity.SkillCategory) int { return c.SortOrder }) {
		skills := make([]dto.SkillResponse, 0, len(category.Skills))
		for _, skill := range sortedBy(category.Skills, func(s entity.Skill) int { return s.SortOrder }) {
			skills = append(skills, mapSkill(skill))
		}
		out = append(out, dto.SkillCategoryResponse{
			ID:     category.ID,
			Name:   category.Name,
			Skills: skills,
		})
	}
	return out
}

// MergeSkills keeps only the skills the profile links, orders them by the
// profile's sort order and drops categories left empty. Categories keep their
// base order.
func MergeSkills(categories []entity.SkillCategory, overlays []entity.ProfileSkill) []dto.SkillCategoryResponse {
	visible := make(map[uuid.UUID]entity.ProfileSkill, len(overlays))
	for _, o := range overlays {
		visible[o.SkillID] = o
	}

	out := make([]dto.SkillCategoryResponse, 0, len(categories))
	for _, category := range sortedBy(categories, func(c entity.SkillCategory) int { return c.SortOrder }) {
		var linked []entity.Skill
		for _, skill := range sortedBy(category.Skills, func(s entity.Skill) int { return s.SortOrder }) {
			if _, ok := visible[skill.ID]; ok {
				linked = append(linked, skill)
			}
		}
		if len(linked) == 0 {
			continue
		}

		linked = sortedBy(linked, func(s entity.Skill) int { return visible[s.ID].SortOrder })

		skills := make([]dto.SkillResponse, 0, len(linked))
		for _, skill := range linked {
			view := mapSkill(skill)
			view.IsHighlighted = visible[skill.ID].IsHighlighted
			skills = append(skills, view)
		}

		out = append(out, dto.SkillCategoryResponse{
			ID:     category.ID,
			Name:   category.Name,
			Skills: skills,
		})
	}
	return out
}

// sortProjectsByTimeline orders current projects first, then by start date
// descending. Projects without a start date go last within their group.
func sortProjectsByTimeline(projects []entity.Project) []entity.Project {
	out := sortedBy(projects, func(p entity.Project) int { return p.SortOrder })
	slices.SortStableFunc(out, func(a, b entity.Project) int {
		if a.IsCurrent != b.IsCurrent {
			if a.IsCurrent {
				return -1
			}
			return 1
		}
		switch {
		case a.StartDate == nil && b.StartDate == nil:
			return 0
		case a.StartDate == nil:
			return 1
		case b.StartDate == nil:
			return -1
		}
		return b.StartDate.Compare(*a.StartDate)
	})
	return out
}

// ProjectsView lists every project on the timeline, without overrides.
func ProjectsView(projects []entity.Project) []dto.ProjectResponse {
	ordered := sortProjectsByTimeline(projects)
	out := make([]dto.ProjectResponse, 0, len(ordered))
	for _, p := range ordered {
		out = append(out, mapProject(p))
	}
	return out
}

// MergeProjects keeps the projects the profile links and applies highlight and
// description override. Ordering stays on the timeline: the overlay sort order
// is intentionally not used for projects, unlike skills and work experience.
func MergeProjects(projects []entity.Project, overlays []entity.ProfileProject) []dto.ProjectResponse {
	visible := make(map[uuid.UUID]entity.ProfileProject, len(overlays))
	for _, o := range overlays {
		visible[o.ProjectID] = o
	}

	var linked []entity.Project
	for _, p := range projects {
		if _, ok := visible[p.ID]; ok {
			linked = append(linked, p)
		}
	}

	ordered := sortProjectsByTimeline(linked)
	out := make([]dto.ProjectResponse, 0, len(ordered))
	for _, p := range ordered {
		overlay := visible[p.ID]
		view := mapProject(p)
		view.IsHighlighted = overlay.IsHighlighted
		if overlay.DescriptionOverride != nil {
			view.Description = overlay.DescriptionOverride
		}
		out = append(out, view)
	}
	return out
}

// WorkExperienceView lists every entry in base sort order.
func WorkExperienceView(rows []entity.WorkExperience) []dto.WorkExperienceResponse {
	ordered := sortedBy(rows, func(w entity.WorkExperience) int { return w.SortOrder })
	out := make([]dto.WorkExperienceResponse, 0, len(ordered))
	for _, w := range ordered {
		out = append(out, mapWorkExperience(w))
	}
	return out
}

// MergeWorkExperience emits entries in the profile's sort order, applying
// highlight and description override.
func MergeWorkExperience(rows []entity.WorkExperience, overlays []entity.ProfileWorkExperience) []dto.WorkExperienceResponse {
	byID := make(map[uuid.UUID]entity.WorkExperience, len(rows))
	for _, w := range rows {
		byID[w.ID] = w
	}

	seen := make(map[uuid.UUID]struct{}, len(overlays))
	out := make([]dto.WorkExperienceResponse, 0, len(overlays))
	for _, overlay := range sortedBy(overlays, func(o entity.ProfileWorkExperience) int { return o.SortOrder }) {
		w, ok := byID[overlay.WorkExperienceID]
		if !ok {
			continue
		}
		if _, dup := seen[w.ID]; dup {
			continue
		}
		seen[w.ID] = struct{}{}

		view := mapWorkExperience(w)
		view.IsHighlighted = overlay.IsHighlighted
		if overlay.DescriptionOverride != nil {
			view.Description = overlay.DescriptionOverride
		}
		out = append(out, view)
	}
	return out
}

func profileProjectIDs(overlays []entity.ProfileProject) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(overlays))
	for _, o := range overlays {
		ids = append(ids, o.ProjectID)
	}
	return ids
}

func profileWorkExperienceIDs(overlays []entity.ProfileWorkExperience) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(overlays))
	for _, o := range overlays {
		ids = append(ids, o.WorkExperienceID)
	}
	return ids
}
