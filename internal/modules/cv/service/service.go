package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/lebenslauf/internal/entity"
	"anoa.com/lebenslauf/internal/modules/cv/dto"
	"anoa.com/lebenslauf/internal/modules/cv/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CvService interface {
	// ResolveProfile returns nil without error when the slug is unknown or no
	// default profile exists.
	ResolveProfile(ctx context.Context, slug string) (*entity.Profile, error)
	GetCv(ctx context.Context, slug string) (*dto.CvResponse, error)
	GetProfiles(ctx context.Context) (*dto.ProfilesResponse, error)
}

type cvService struct {
	repo           repository.CvRepository
	githubUsername string
	log            *zap.Logger
}

func NewCvService(repo repository.CvRepository, githubUsername string, log *zap.Logger) CvService {
	return &cvService{
		repo:           repo,
		githubUsername: githubUsername,
		log:            log,
	}
}

func (s *cvService) ResolveProfile(ctx context.Context, slug string) (*entity.Profile, error) {
	var (
		profile *entity.Profile
		err     error
	)
	if slug == "" {
		profile, err = s.repo.FindDefaultProfile(ctx)
	} else {
		profile, err = s.repo.FindProfileBySlug(ctx, slug)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve profile %q: %w", slug, err)
	}
	return profile, nil
}

func (s *cvService) GetCv(ctx context.Context, slug string) (*dto.CvResponse, error) {
	profile, err := s.ResolveProfile(ctx, slug)
	if err != nil {
		return nil, err
	}
	if profile == nil && slug != "" {
		s.log.Debug("unknown profile, serving unfiltered cv", zap.String("slug", slug))
	}

	personal, err := s.personalData(ctx, profile)
	if err != nil {
		return nil, err
	}

	family, err := s.repo.FindFamilyMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load family members: %w", err)
	}
	education, err := s.repo.FindEducation(ctx)
	if err != nil {
		return nil, fmt.Errorf("load education: %w", err)
	}
	internships, err := s.repo.FindInternships(ctx)
	if err != nil {
		return nil, fmt.Errorf("load internships: %w", err)
	}

	work, err := s.workExperience(ctx, profile)
	if err != nil {
		return nil, err
	}
	skills, err := s.skillCategories(ctx, profile)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects(ctx, profile)
	if err != nil {
		return nil, err
	}

	contributions, err := s.repo.FindGitHubContributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load github contributions: %w", err)
	}

	return &dto.CvResponse{
		PersonalData:    personal,
		FamilyMembers:   mapFamilyMembers(family),
		Education:       mapEducation(education),
		Internships:     mapInternships(internships),
		WorkExperience:  work,
		SkillCategories: skills,
		Projects:        projects,
		GitHub:          SummarizeContributions(s.githubUsername, contributions),
	}, nil
}

func (s *cvService) GetProfiles(ctx context.Context) (*dto.ProfilesResponse, error) {
	profiles, err := s.repo.FindAllProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	out := make([]dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, mapProfile(p))
	}
	return &dto.ProfilesResponse{Profiles: out}, nil
}

// personalData prefers the profile's own row, then any row, then the placeholder.
func (s *cvService) personalData(ctx context.Context, profile *entity.Profile) (dto.PersonalDataResponse, error) {
	if profile != nil {
		data, err := s.repo.FindPersonalDataByProfileID(ctx, profile.ID)
		switch {
		case err == nil:
			return mapPersonalData(data), nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return dto.PersonalDataResponse{}, fmt.Errorf("load personal data: %w", err)
		}
	}

	data, err := s.repo.FindFirstPersonalData(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("no personal data stored, using placeholder")
			return unknownPersonalData(), nil
		}
		return dto.PersonalDataResponse{}, fmt.Errorf("load personal data: %w", err)
	}
	return mapPersonalData(data), nil
}

func (s *cvService) workExperience(ctx context.Context, profile *entity.Profile) ([]dto.WorkExperienceResponse, error) {
	if profile == nil {
		rows, err := s.repo.FindWorkExperiences(ctx)
		if err != nil {
			return nil, fmt.Errorf("load work experience: %w", err)
		}
		return WorkExperienceView(rows), nil
	}

	overlays, err := s.repo.FindProfileWorkExperiences(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("load work experience overlay: %w", err)
	}
	rows, err := s.repo.FindWorkExperiencesByIDs(ctx, profileWorkExperienceIDs(overlays))
	if err != nil {
		return nil, fmt.Errorf("load work experience: %w", err)
	}
	return MergeWorkExperience(rows, overlays), nil
}

func (s *cvService) skillCategories(ctx context.Context, profile *entity.Profile) ([]dto.SkillCategoryResponse, error) {
	categories, err := s.repo.FindSkillCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skill categories: %w", err)
	}
	if profile == nil {
		return SkillCategoriesView(categories), nil
	}

	overlays, err := s.repo.FindProfileSkills(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("load skill overlay: %w", err)
	}
	return MergeSkills(categories, overlays), nil
}

func (s *cvService) projects(ctx context.Context, profile *entity.Profile) ([]dto.ProjectResponse, error) {
	if profile == nil {
		rows, err := s.repo.FindProjects(ctx)
		if err != nil {
			return nil, fmt.Errorf("load projects: %w", err)
		}
		return ProjectsView(rows), nil
	}

	overlays, err := s.repo.FindProfileProjects(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("load project overlay: %w", err)
	}
	rows, err := s.repo.FindProjectsByIDs(ctx, profileProjectIDs(overlays))
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return MergeProjects(rows, overlays), nil
}
