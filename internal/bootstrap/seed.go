package bootstrap

import (
	"errors"
	"time"

	"anoa.com/lebenslauf/internal/entity"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	contributionsFrom = date(2025, time.January, 1)
	contributionsTo   = date(2026, time.January, 11)
)

const contributionsTotal = 5289

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Profile{},
		&entity.PersonalData{},
		&entity.FamilyMember{},
		&entity.Education{},
		&entity.Internship{},
		&entity.WorkExperience{},
		&entity.SkillCategory{},
		&entity.Skill{},
		&entity.Project{},
		&entity.ProjectTechnology{},
		&entity.ProjectFunction{},
		&entity.ProjectTechnicalAspect{},
		&entity.ProjectSubProject{},
		&entity.ProjectSubProjectTechnology{},
		&entity.ProfileSkill{},
		&entity.ProfileProject{},
		&entity.ProfileWorkExperience{},
		&entity.GitHubContribution{},
		&entity.AdminUser{},
	)
}

// SeedCv writes the sample data set once. It does nothing when any
// personal data row exists, so it is safe to run on every start.
// It reports whether rows were written.
func SeedCv(db *gorm.DB, log *zap.Logger) (bool, error) {
	var count int64
	if err := db.Model(&entity.PersonalData{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		log.Debug("cv data already present, skipping seed")
		return false, nil
	}

	data := NewSampleData()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := seedProfiles(tx, data.Profiles); err != nil {
			return err
		}

		rows := []any{
			&data.PersonalData,
			&data.Family,
			&data.Education,
			&data.Internships,
			&data.WorkExperiences,
		}
		for _, r := range rows {
			if err := tx.Omit(clause.Associations).Create(r).Error; err != nil {
				return err
			}
		}

		// Nested skills, project lists and sub-projects are written with their parents.
		if err := tx.Create(&data.SkillCategories).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Projects).Error; err != nil {
			return err
		}

		overlays := []any{
			&data.ProfileSkills,
			&data.ProfileProjects,
			&data.ProfileWorkExperiences,
		}
		for _, o := range overlays {
			if err := tx.Create(o).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if err := SeedContributions(db, log); err != nil {
		return true, err
	}

	log.Info("sample cv data seeded",
		zap.Int("profiles", len(data.Profiles)),
		zap.Int("projects", len(data.Projects)),
		zap.Int("skill_overlays", len(data.ProfileSkills)))
	return true, nil
}

func seedProfiles(tx *gorm.DB, profiles []entity.Profile) error {
	var count int64
	if err := tx.Model(&entity.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(&profiles).Error
}

// SeedContributions fills the contribution graph when it is empty.
func SeedContributions(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&entity.GitHubContribution{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := GenerateContributions(contributionsFrom, contributionsTo, contributionsTotal, ContributionSeed)
	if err := db.CreateInBatches(&rows, 100).Error; err != nil {
		return err
	}
	log.Info("github contributions seeded", zap.Int("days", len(rows)))
	return nil
}

// SeedAdminUser creates the operator account from the configured credentials.
// Empty credentials disable the admin API, which is logged rather than failed.
func SeedAdminUser(db *gorm.DB, email, password string, log *zap.Logger) error {
	if email == "" || password == "" {
		log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, admin login disabled")
		return nil
	}

	var existing entity.AdminUser
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Debug("admin user already exists, skipping seed", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.AdminUser{
		Email:        email,
		PasswordHash: string(hashedPasswordBytes),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("admin user seeded", zap.String("email", email))
	return nil
}
