package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"anoa.com/lebenslauf/internal/entity"
	"anoa.com/lebenslauf/internal/modules/admin/dto"
	"anoa.com/lebenslauf/internal/modules/admin/repository"
	search "anoa.com/lebenslauf/internal/modules/search/service"
	"anoa.com/lebenslauf/pkg/apperror"
	commonDto "anoa.com/lebenslauf/pkg/dto"
	"anoa.com/lebenslauf/pkg/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid credentials", apperror.ErrUnauthorized)

type AdminService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)

	UpsertSkillOverlay(ctx context.Context, slug string, skillID uuid.UUID, input dto.SkillOverlayInput) (*dto.OverlayResponse, error)
	RemoveSkillOverlay(ctx context.Context, slug string, skillID uuid.UUID) error
	UpsertProjectOverlay(ctx context.Context, slug string, projectID uuid.UUID, input dto.DescribedOverlayInput) (*dto.OverlayResponse, error)
	UpsertWorkExperienceOverlay(ctx context.Context, slug string, workExperienceID uuid.UUID, input dto.DescribedOverlayInput) (*dto.OverlayResponse, error)

	DeleteProject(ctx context.Context, id uuid.UUID) error
	UploadProfileImage(ctx context.Context, slug string, file *commonDto.UploadFile) (*dto.ProfileImageResponse, error)

	ReindexSearch(ctx context.Context) (*dto.ReindexResponse, error)
	PruneOrphanedOverlays(ctx context.Context) (*dto.PruneResponse, error)
}

type Options struct {
	JWTSecret    string
	TokenTTL     time.Duration
	UploadFolder string
}

type adminService struct {
	repo         repository.AdminRepository
	search       search.ProjectSearchService
	imageStorage storage.ImageStorage
	opts         Options
	log          *zap.Logger
}

// NewAdminService accepts a nil imageStorage; uploads then fail as unavailable.
func NewAdminService(repo repository.AdminRepository, searchSvc search.ProjectSearchService, imageStorage storage.ImageStorage, opts Options, log *zap.Logger) AdminService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.UploadFolder == "" {
		opts.UploadFolder = "lebenslauf"
	}
	return &adminService{
		repo:         repo,
		search:       searchSvc,
		imageStorage: imageStorage,
		opts:         opts,
		log:          log,
	}
}

func (s *adminService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindAdminByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("admin logged in", zap.String("admin_id", user.ID.String()))
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
	}, nil
}

func (s *adminService) generateToken(user *entity.AdminUser) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(s.opts.TokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.opts.JWTSecret))
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt.Unix(), nil
}

func (s *adminService) profile(ctx context.Context, slug string) (*entity.Profile, error) {
	profile, err := s.repo.FindProfileBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, fmt.Sprintf("profile %q not found", slug), apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

func requireExists(ok bool, err error, kind string, id uuid.UUID) error {
	if err != nil {
		return fmt.Errorf("check %s: %w", kind, err)
	}
	if !ok {
		return apperror.New(http.StatusNotFound, fmt.Sprintf("%s %s not found", kind, id), apperror.ErrNotFound)
	}
	return nil
}

func (s *adminService) UpsertSkillOverlay(ctx context.Context, slug string, skillID uuid.UUID, input dto.SkillOverlayInput) (*dto.OverlayResponse, error) {
	profile, err := s.profile(ctx, slug)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.SkillExists(ctx, skillID)
	if err := requireExists(ok, err, "skill", skillID); err != nil {
		return nil, err
	}

	overlay := &entity.ProfileSkill{
		ProfileID:     profile.ID,
		SkillID:       skillID,
		SortOrder:     input.SortOrder,
		IsHighlighted: input.IsHighlighted,
	}
	if err := s.repo.UpsertProfileSkill(ctx, overlay); err != nil {
		return nil, fmt.Errorf("upsert skill overlay: %w", err)
	}

	return &dto.OverlayResponse{
		ProfileID:     profile.ID,
		EntityID:      skillID,
		SortOrder:     overlay.SortOrder,
		IsHighlighted: overlay.IsHighlighted,
	}, nil
}

func (s *adminService) RemoveSkillOverlay(ctx context.Context, slug string, skillID uuid.UUID) error {
	profile, err := s.profile(ctx, slug)
	if err != nil {
		return err
	}

	n, err := s.repo.DeleteProfileSkill(ctx, profile.ID, skillID)
	if err != nil {
		return fmt.Errorf("delete skill overlay: %w", err)
	}
	if n == 0 {
		return apperror.New(http.StatusNotFound, "skill is not linked to this profile", apperror.ErrNotFound)
	}
	return nil
}

func (s *adminService) UpsertProjectOverlay(ctx context.Context, slug string, projectID uuid.UUID, input dto.DescribedOverlayInput) (*dto.OverlayResponse, error) {
	profile, err := s.profile(ctx, slug)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.ProjectExists(ctx, projectID)
	if err := requireExists(ok, err, "project", projectID); err != nil {
		return nil, err
	}

	overlay := &entity.ProfileProject{
		ProfileID:           profile.ID,
		ProjectID:           projectID,
		SortOrder:           input.SortOrder,
		IsHighlighted:       input.IsHighlighted,
		DescriptionOverride: input.DescriptionOverride,
	}
	if err := s.repo.UpsertProfileProject(ctx, overlay); err != nil {
		return nil, fmt.Errorf("upsert project overlay: %w", err)
	}

	return &dto.OverlayResponse{
		ProfileID:           profile.ID,
		EntityID:            projectID,
		SortOrder:           overlay.SortOrder,
		IsHighlighted:       overlay.IsHighlighted,
		DescriptionOverride: overlay.DescriptionOverride,
	}, nil
}

func (s *adminService) UpsertWorkExperienceOverlay(ctx context.Context, slug string, workExperienceID uuid.UUID, input dto.DescribedOverlayInput) (*dto.OverlayResponse, error) {
	profile, err := s.profile(ctx, slug)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.WorkExperienceExists(ctx, workExperienceID)
	if err := requireExists(ok, err, "work experience", workExperienceID); err != nil {
		return nil, err
	}

	overlay := &entity.ProfileWorkExperience{
		ProfileID:           profile.ID,
		WorkExperienceID:    workExperienceID,
		SortOrder:           input.SortOrder,
		IsHighlighted:       input.IsHighlighted,
		DescriptionOverride: input.DescriptionOverride,
	}
	if err := s.repo.UpsertProfileWorkExperience(ctx, overlay); err != nil {
		return nil, fmt.Errorf("upsert work experience overlay: %w", err)
	}

	return &dto.OverlayResponse{
		ProfileID:           profile.ID,
		EntityID:            workExperienceID,
		SortOrder:           overlay.SortOrder,
		IsHighlighted:       overlay.IsHighlighted,
		DescriptionOverride: overlay.DescriptionOverride,
	}, nil
}

func (s *adminService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, fmt.Sprintf("project %s not found", id), apperror.ErrNotFound)
		}
		return fmt.Errorf("delete project: %w", err)
	}

	// The index catches up on the next scheduled reindex if this fails.
	if err := s.search.DeleteProject(ctx, id); err != nil {
		s.log.Warn("failed to remove project from search index", zap.String("project_id", id.String()), zap.Error(err))
	}
	return nil
}

func (s *adminService) UploadProfileImage(ctx context.Context, slug string, file *commonDto.UploadFile) (*dto.ProfileImageResponse, error) {
	if s.imageStorage == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "image storage is not configured", apperror.ErrUnavailable)
	}
	if file == nil || file.Reader == nil {
		return nil, apperror.New(http.StatusBadRequest, "image file is required", apperror.ErrBadRequest)
	}

	profile, err := s.profile(ctx, slug)
	if err != nil {
		return nil, err
	}

	url, err := s.imageStorage.UploadImage(ctx, file.Reader, s.opts.UploadFolder+"/profiles", file.FileName)
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, err.Error(), apperror.ErrBadRequest)
	}

	previous, err := s.repo.UpdateProfileImage(ctx, profile.ID, url)
	if err != nil {
		if delErr := s.imageStorage.DeleteImage(ctx, url); delErr != nil {
			s.log.Warn("failed to roll back uploaded image", zap.String("url", url), zap.Error(delErr))
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "profile has no personal data", apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("update profile image: %w", err)
	}

	if previous != nil && *previous != "" {
		if err := s.imageStorage.DeleteImage(ctx, *previous); err != nil {
			s.log.Warn("failed to delete previous profile image", zap.String("url", *previous), zap.Error(err))
		}
	}

	return &dto.ProfileImageResponse{ProfileImageURL: url}, nil
}

func (s *adminService) ReindexSearch(ctx context.Context) (*dto.ReindexResponse, error) {
	n, err := s.search.Reindex(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReindexResponse{Indexed: n}, nil
}

func (s *adminService) PruneOrphanedOverlays(ctx context.Context) (*dto.PruneResponse, error) {
	var (
		res dto.PruneResponse
		err error
	)
	if res.Skills, err = s.repo.PruneOrphanedSkills(ctx); err != nil {
		return nil, fmt.Errorf("prune skill overlays: %w", err)
	}
	if res.Projects, err = s.repo.PruneOrphanedProjects(ctx); err != nil {
		return nil, fmt.Errorf("prune project overlays: %w", err)
	}
	if res.WorkExperiences, err = s.repo.PruneOrphanedWorkExperiences(ctx); err != nil {
		return nil, fmt.Errorf("prune work experience overlays: %w", err)
	}

	if res.Total() > 0 {
		s.log.Info("pruned orphaned overlay rows",
			zap.Int64("skills", res.Skills),
			zap.Int64("projects", res.Projects),
			zap.Int64("work_experiences", res.WorkExperiences))
	}
	return &res, nil
}
