package repository

import (
	"context"

	"anoa.com/lebenslauf/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminRepository interface {
	FindAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	FindAdminByID(ctx context.Context, id string) (*entity.AdminUser, error)
	FindProfileBySlug(ctx context.Context, slug string) (*entity.Profile, error)

	SkillExists(ctx context.Context, id uuid.UUID) (bool, error)
	ProjectExists(ctx context.Context, id uuid.UUID) (bool, error)
	WorkExperienceExists(ctx context.Context, id uuid.UUID) (bool, error)

	UpsertProfileSkill(ctx context.Context, overlay *entity.ProfileSkill) error
	DeleteProfileSkill(ctx context.Context, profileID, skillID uuid.UUID) (int64, error)
	UpsertProfileProject(ctx context.Context, overlay *entity.ProfileProject) error
	UpsertProfileWorkExperience(ctx context.Context, overlay *entity.ProfileWorkExperience) error

	DeleteProject(ctx context.Context, id uuid.UUID) error
	UpdateProfileImage(ctx context.Context, profileID uuid.UUID, url string) (previous *string, err error)

	PruneOrphanedSkills(ctx context.Context) (int64, error)
	PruneOrphanedProjects(ctx context.Context) (int64, error)
	PruneOrphanedWorkExperiences(ctx context.Context) (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var user entity.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminRepository) FindAdminByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	var user entity.AdminUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminRepository) FindProfileBySlug(ctx context.Context, slug string) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *adminRepository) exists(ctx context.Context, model any, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *adminRepository) SkillExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &entity.Skill{}, id)
}

func (r *adminRepository) ProjectExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &entity.Project{}, id)
}

func (r *adminRepository) WorkExperienceExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &entity.WorkExperience{}, id)
}

func (r *adminRepository) UpsertProfileSkill(ctx context.Context, overlay *entity.ProfileSkill) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sort_order", "is_highlighted"}),
	}).Create(overlay).Error
}

func (r *adminRepository) DeleteProfileSkill(ctx context.Context, profileID, skillID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("profile_id = ? AND skill_id = ?", profileID, skillID).
		Delete(&entity.ProfileSkill{})
	return res.RowsAffected, res.Error
}

func (r *adminRepository) UpsertProfileProject(ctx context.Context, overlay *entity.ProfileProject) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sort_order", "is_highlighted", "description_override"}),
	}).Create(overlay).Error
}

func (r *adminRepository) UpsertProfileWorkExperience(ctx context.Context, overlay *entity.ProfileWorkExperience) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "work_experience_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sort_order", "is_highlighted", "description_override"}),
	}).Create(overlay).Error
}

// DeleteProject removes the project with everything it owns. Overlay rows
// pointing at it are left for the prune job.
func (r *adminRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subProjects := tx.Model(&entity.ProjectSubProject{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("sub_project_id IN (?)", subProjects).Delete(&entity.ProjectSubProjectTechnology{}).Error; err != nil {
			return err
		}

		owned := []any{
			&entity.ProjectSubProject{},
			&entity.ProjectTechnology{},
			&entity.ProjectFunction{},
			&entity.ProjectTechnicalAspect{},
		}
		for _, model := range owned {
			if err := tx.Where("project_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", id).Delete(&entity.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *adminRepository) UpdateProfileImage(ctx context.Context, profileID uuid.UUID, url string) (*string, error) {
	var data entity.PersonalData
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&data).Error; err != nil {
		return nil, err
	}

	previous := data.ProfileImageURL
	if err := r.db.WithContext(ctx).Model(&data).Update("profile_image_url", url).Error; err != nil {
		return nil, err
	}
	return previous, nil
}

func (r *adminRepository) prune(ctx context.Context, model any, column, baseTable string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where(column + " NOT IN (SELECT id FROM " + baseTable + ")").
		Delete(model)
	return res.RowsAffected, res.Error
}

func (r *adminRepository) PruneOrphanedSkills(ctx context.Context) (int64, error) {
	return r.prune(ctx, &entity.ProfileSkill{}, "skill_id", "skills")
}

func (r *adminRepository) PruneOrphanedProjects(ctx context.Context) (int64, error) {
	return r.prune(ctx, &entity.ProfileProject{}, "project_id", "projects")
}

func (r *adminRepository) PruneOrphanedWorkExperiences(ctx context.Context) (int64, error) {
	return r.prune(ctx, &entity.ProfileWorkExperience{}, "work_experience_id", "work_experiences")
}
