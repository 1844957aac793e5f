package repository

import (
	"context"

	"anoa.com/lebenslauf/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CvRepository is the read side of the CV store. Every list is returned in a
// deterministic order so repeated resolutions see identical input.
type CvRepository interface {
	FindDefaultProfile(ctx context.Context) (*entity.Profile, error)
	FindProfileBySlug(ctx context.Context, slug string) (*entity.Profile, error)
	FindAllProfiles(ctx context.Context) ([]entity.Profile, error)

	FindPersonalDataByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.PersonalData, error)
	FindFirstPersonalData(ctx context.Context) (*entity.PersonalData, error)

	FindFamilyMembers(ctx context.Context) ([]entity.FamilyMember, error)
	FindEducation(ctx context.Context) ([]entity.Education, error)
	FindInternships(ctx context.Context) ([]entity.Internship, error)

	FindWorkExperiences(ctx context.Context) ([]entity.WorkExperience, error)
	FindWorkExperiencesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.WorkExperience, error)
	FindProfileWorkExperiences(ctx context.Context, profileID uuid.UUID) ([]entity.ProfileWorkExperience, error)

	FindSkillCategories(ctx context.Context) ([]entity.SkillCategory, error)
	FindProfileSkills(ctx context.Context, profileID uuid.UUID) ([]entity.ProfileSkill, error)

	FindProjects(ctx context.Context) ([]entity.Project, error)
	FindProjectsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Project, error)
	FindProfileProjects(ctx context.Context, profileID uuid.UUID) ([]entity.ProfileProject, error)

	FindGitHubContributions(ctx context.Context) ([]entity.GitHubContribution, error)
}

type cvRepository struct {
	db *gorm.DB
}

func NewCvRepository(db *gorm.DB) CvRepository {
	return &cvRepository{db: db}
}

func bySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("id ASC")
}

// FindDefaultProfile picks the first default profile by slug when several are flagged.
func (r *cvRepository) FindDefaultProfile(ctx context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).
		Where("is_default = ?", true).
		Order("slug ASC").
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *cvRepository) FindProfileBySlug(ctx context.Context, slug string) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *cvRepository) FindAllProfiles(ctx context.Context) ([]entity.Profile, error) {
	var profiles []entity.Profile
	if err := r.db.WithContext(ctx).
		Order("is_default DESC").
		Order("name ASC").
		Order("slug ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *cvRepository) FindPersonalDataByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.PersonalData, error) {
	var data entity.PersonalData
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *cvRepository) FindFirstPersonalData(ctx context.Context) (*entity.PersonalData, error) {
	var data entity.PersonalData
	if err := r.db.WithContext(ctx).Order("id ASC").First(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *cvRepository) FindFamilyMembers(ctx context.Context) ([]entity.FamilyMember, error) {
	var members []entity.FamilyMember
	if err := bySortOrder(r.db.WithContext(ctx)).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *cvRepository) FindEducation(ctx context.Context) ([]entity.Education, error) {
	var education []entity.Education
	if err := bySortOrder(r.db.WithContext(ctx)).Find(&education).Error; err != nil {
		return nil, err
	}
	return education, nil
}

func (r *cvRepository) FindInternships(ctx context.Context) ([]entity.Internship, error) {
	var internships []entity.Internship
	if err := bySortOrder(r.db.WithContext(ctx)).Find(&internships).Error; err != nil {
		return nil, err
	}
	return internships, nil
}

func (r *cvRepository) FindWorkExperiences(ctx context.Context) ([]entity.WorkExperience, error) {
	var rows []entity.WorkExperience
	if err := bySortOrder(r.db.WithContext(ctx)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *cvRepository) FindWorkExperiencesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.WorkExperience, error) {
	var rows []entity.WorkExperience
	if len(ids) == 0 {
		return rows, nil
	}
	if err := bySortOrder(r.db.WithContext(ctx)).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *cvRepository) FindProfileWorkExperiences(ctx context.Context, profileID uuid.UUID) ([]entity.ProfileWorkExperience, error) {
	var overlays []entity.ProfileWorkExperience
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("sort_order ASC").
		Order("work_experience_id ASC").
		Find(&overlays).Error; err != nil {
		return nil, err
	}
	return overlays, nil
}

func (r *cvRepository) FindSkillCategories(ctx context.Context) ([]entity.SkillCategory, error) {
	var categories []entity.SkillCategory
	if err := bySortOrder(r.db.WithContext(ctx)).
		Preload("Skills", bySortOrder).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *cvRepository) FindProfileSkills(ctx context.Context, profileID uuid.UUID) ([]entity.ProfileSkill, error) {
	var overlays []entity.ProfileSkill
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("sort_order ASC").
		Order("skill_id ASC").
		Find(&overlays).Error; err != nil {
		return nil, err
	}
	return overlays, nil
}

func (r *cvRepository) projectQuery(ctx context.Context) *gorm.DB {
	return bySortOrder(r.db.WithContext(ctx)).
		Preload("Technologies", bySortOrder).
		Preload("Functions", bySortOrder).
		Preload("TechnicalAspects", bySortOrder).
		Preload("SubProjects", bySortOrder).
		Preload("SubProjects.Technologies", bySortOrder)
}

func (r *cvRepository) FindProjects(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	if err := r.projectQuery(ctx).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *cvRepository) FindProjectsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Project, error) {
	var projects []entity.Project
	if len(ids) == 0 {
		return projects, nil
	}
	if err := r.projectQuery(ctx).Where("id IN ?", ids).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *cvRepository) FindProfileProjects(ctx context.Context, profileID uuid.UUID) ([]entity.ProfileProject, error) {
	var overlays []entity.ProfileProject
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("sort_order ASC").
		Order("project_id ASC").
		Find(&overlays).Error; err != nil {
		return nil, err
	}
	return overlays, nil
}

func (r *cvRepository) FindGitHubContributions(ctx context.Context) ([]entity.GitHubContribution, error) {
	var contributions []entity.GitHubContribution
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&contributions).Error; err != nil {
		return nil, err
	}
	return contributions, nil
}
