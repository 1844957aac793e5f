package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"anoa.com/lebenslauf/internal/entity"
	"anoa.com/lebenslauf/internal/modules/admin/dto"
	searchDto "anoa.com/lebenslauf/internal/modules/search/dto"
	"anoa.com/lebenslauf/pkg/apperror"
	commonDto "anoa.com/lebenslauf/pkg/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	admin    *entity.AdminUser
	profiles map[string]*entity.Profile
	skills   map[uuid.UUID]bool
	projects map[uuid.UUID]bool
	work     map[uuid.UUID]bool

	skillOverlays   map[[2]uuid.UUID]entity.ProfileSkill
	projectOverlays map[[2]uuid.UUID]entity.ProfileProject
	workOverlays    map[[2]uuid.UUID]entity.ProfileWorkExperience

	images map[uuid.UUID]*string
	pruned dto.PruneResponse
	err    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles:        map[string]*entity.Profile{},
		skills:          map[uuid.UUID]bool{},
		projects:        map[uuid.UUID]bool{},
		work:            map[uuid.UUID]bool{},
		skillOverlays:   map[[2]uuid.UUID]entity.ProfileSkill{},
		projectOverlays: map[[2]uuid.UUID]entity.ProfileProject{},
		workOverlays:    map[[2]uuid.UUID]entity.ProfileWorkExperience{},
		images:          map[uuid.UUID]*string{},
	}
}

func (r *fakeRepo) FindAdminByEmail(_ context.Context, email string) (*entity.AdminUser, error) {
	if r.admin == nil || r.admin.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return r.admin, nil
}

func (r *fakeRepo) FindAdminByID(_ context.Context, id string) (*entity.AdminUser, error) {
	if r.admin == nil || r.admin.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.admin, nil
}

func (r *fakeRepo) FindProfileBySlug(_ context.Context, slug string) (*entity.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeRepo) SkillExists(_ context.Context, id uuid.UUID) (bool, error) {
	return r.skills[id], nil
}

func (r *fakeRepo) ProjectExists(_ context.Context, id uuid.UUID) (bool, error) {
	return r.projects[id], nil
}

func (r *fakeRepo) WorkExperienceExists(_ context.Context, id uuid.UUID) (bool, error) {
	return r.work[id], nil
}

func (r *fakeRepo) UpsertProfileSkill(_ context.Context, o *entity.ProfileSkill) error {
	r.skillOverlays[[2]uuid.UUID{o.ProfileID, o.SkillID}] = *o
	return nil
}

func (r *fakeRepo) DeleteProfileSkill(_ context.Context, profileID, skillID uuid.UUID) (int64, error) {
	key := [2]uuid.UUID{profileID, skillID}
	if _, ok := r.skillOverlays[key]; !ok {
		return 0, nil
	}
	delete(r.skillOverlays, key)
	return 1, nil
}

func (r *fakeRepo) UpsertProfileProject(_ context.Context, o *entity.ProfileProject) error {
	r.projectOverlays[[2]uuid.UUID{o.ProfileID, o.ProjectID}] = *o
	return nil
}

func (r *fakeRepo) UpsertProfileWorkExperience(_ context.Context, o *entity.ProfileWorkExperience) error {
	r.workOverlays[[2]uuid.UUID{o.ProfileID, o.WorkExperienceID}] = *o
	return nil
}

func (r *fakeRepo) DeleteProject(_ context.Context, id uuid.UUID) error {
	if !r.projects[id] {
		return gorm.ErrRecordNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeRepo) UpdateProfileImage(_ context.Context, profileID uuid.UUID, url string) (*string, error) {
	previous, ok := r.images[profileID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.images[profileID] = &url
	return previous, nil
}

func (r *fakeRepo) PruneOrphanedSkills(context.Context) (int64, error) {
	return r.pruned.Skills, r.err
}

func (r *fakeRepo) PruneOrphanedProjects(context.Context) (int64, error) {
	return r.pruned.Projects, r.err
}

func (r *fakeRepo) PruneOrphanedWorkExperiences(context.Context) (int64, error) {
	return r.pruned.WorkExperiences, r.err
}

type fakeSearch struct {
	deleted []uuid.UUID
	indexed int
	err     error
}

func (f *fakeSearch) InitIndex(context.Context) error { return nil }

func (f *fakeSearch) IndexProjects(context.Context, []entity.Project) error { return nil }

func (f *fakeSearch) DeleteProject(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeSearch) Reindex(context.Context) (int, error) {
	return f.indexed, f.err
}

func (f *fakeSearch) SearchProjects(context.Context, string, int) (*searchDto.SearchProjectsResponse, error) {
	return nil, nil
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (f *fakeStorage) UploadImage(_ context.Context, r io.Reader, folder, fileName string) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	url := "https://res.cloudinary.com/demo/image/upload/" + folder + "/" + fileName
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeStorage) DeleteImage(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

const testSecret = "test-secret"

func newTestService(repo *fakeRepo, search *fakeSearch, storage *fakeStorage) AdminService {
	opts := Options{JWTSecret: testSecret, TokenTTL: time.Hour, UploadFolder: "cv"}
	if storage == nil {
		return NewAdminService(repo, search, nil, opts, zap.NewNop())
	}
	return NewAdminService(repo, search, storage, opts, zap.NewNop())
}

func withBackendProfile(repo *fakeRepo) *entity.Profile {
	p := &entity.Profile{ID: uuid.New(), Slug: "backend", Name: "Backend"}
	repo.profiles[p.Slug] = p
	return p
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newFakeRepo()
	repo.admin = &entity.AdminUser{ID: uuid.New(), Email: "admin@example.com", PasswordHash: string(hash)}
	svc := newTestService(repo, &fakeSearch{}, nil)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(context.Background(), dto.LoginInput{Email: "admin@example.com", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", res.TokenType)

		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.Equal(t, repo.admin.ID.String(), claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginInput{Email: "admin@example.com", Password: "nope"})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginInput{Email: "x@example.com", Password: "s3cret"})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func TestUpsertSkillOverlay(t *testing.T) {
	repo := newFakeRepo()
	profile := withBackendProfile(repo)
	skillID := uuid.New()
	repo.skills[skillID] = true
	svc := newTestService(repo, &fakeSearch{}, nil)
	ctx := context.Background()

	res, err := svc.UpsertSkillOverlay(ctx, "backend", skillID, dto.SkillOverlayInput{SortOrder: 2, IsHighlighted: true})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, res.ProfileID)
	assert.True(t, res.IsHighlighted)

	_, err = svc.UpsertSkillOverlay(ctx, "backend", skillID, dto.SkillOverlayInput{SortOrder: 5})
	require.NoError(t, err)
	require.Len(t, repo.skillOverlays, 1)
	assert.Equal(t, 5, repo.skillOverlays[[2]uuid.UUID{profile.ID, skillID}].SortOrder)

	_, err = svc.UpsertSkillOverlay(ctx, "mobile", skillID, dto.SkillOverlayInput{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.UpsertSkillOverlay(ctx, "backend", uuid.New(), dto.SkillOverlayInput{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRemoveSkillOverlay(t *testing.T) {
	repo := newFakeRepo()
	profile := withBackendProfile(repo)
	skillID := uuid.New()
	repo.skillOverlays[[2]uuid.UUID{profile.ID, skillID}] = entity.ProfileSkill{ProfileID: profile.ID, SkillID: skillID}
	svc := newTestService(repo, &fakeSearch{}, nil)

	require.NoError(t, svc.RemoveSkillOverlay(context.Background(), "backend", skillID))
	assert.Empty(t, repo.skillOverlays)

	err := svc.RemoveSkillOverlay(context.Background(), "backend", skillID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpsertProjectOverlay_DescriptionOverride(t *testing.T) {
	repo := newFakeRepo()
	profile := withBackendProfile(repo)
	projectID := uuid.New()
	repo.projects[projectID] = true
	svc := newTestService(repo, &fakeSearch{}, nil)

	override := "Go services behind the shop"
	res, err := svc.UpsertProjectOverlay(context.Background(), "backend", projectID, dto.DescribedOverlayInput{
		SortOrder:           1,
		DescriptionOverride: &override,
	})
	require.NoError(t, err)
	require.NotNil(t, res.DescriptionOverride)
	assert.Equal(t, override, *res.DescriptionOverride)

	stored := repo.projectOverlays[[2]uuid.UUID{profile.ID, projectID}]
	assert.Equal(t, &override, stored.DescriptionOverride)
}

func TestUpsertWorkExperienceOverlay_UnknownEntity(t *testing.T) {
	repo := newFakeRepo()
	withBackendProfile(repo)
	svc := newTestService(repo, &fakeSearch{}, nil)

	_, err := svc.UpsertWorkExperienceOverlay(context.Background(), "backend", uuid.New(), dto.DescribedOverlayInput{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Empty(t, repo.workOverlays)
}

func TestDeleteProject(t *testing.T) {
	repo := newFakeRepo()
	id := uuid.New()
	repo.projects[id] = true
	search := &fakeSearch{}
	svc := newTestService(repo, search, nil)

	require.NoError(t, svc.DeleteProject(context.Background(), id))
	assert.Equal(t, []uuid.UUID{id}, search.deleted)

	err := svc.DeleteProject(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteProject_IndexFailureIsNotFatal(t *testing.T) {
	repo := newFakeRepo()
	id := uuid.New()
	repo.projects[id] = true
	svc := newTestService(repo, &fakeSearch{err: errors.New("meili down")}, nil)

	assert.NoError(t, svc.DeleteProject(context.Background(), id))
}

func TestUploadProfileImage(t *testing.T) {
	repo := newFakeRepo()
	profile := withBackendProfile(repo)
	old := "https://res.cloudinary.com/demo/image/upload/cv/profiles/old.jpg"
	repo.images[profile.ID] = &old
	storage := &fakeStorage{}
	svc := newTestService(repo, &fakeSearch{}, storage)

	res, err := svc.UploadProfileImage(context.Background(), "backend", &commonDto.UploadFile{
		Reader:   strings.NewReader("jpeg bytes"),
		FileName: "me.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/cv/profiles/me.jpg", res.ProfileImageURL)
	assert.Equal(t, []string{old}, storage.deleted)
	assert.Equal(t, res.ProfileImageURL, *repo.images[profile.ID])
}

func TestUploadProfileImage_NoPersonalDataRollsBack(t *testing.T) {
	repo := newFakeRepo()
	withBackendProfile(repo)
	storage := &fakeStorage{}
	svc := newTestService(repo, &fakeSearch{}, storage)

	_, err := svc.UploadProfileImage(context.Background(), "backend", &commonDto.UploadFile{
		Reader:   strings.NewReader("png"),
		FileName: "me.png",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, storage.uploaded, storage.deleted)
}

func TestUploadProfileImage_StorageNotConfigured(t *testing.T) {
	repo := newFakeRepo()
	withBackendProfile(repo)
	svc := newTestService(repo, &fakeSearch{}, nil)

	_, err := svc.UploadProfileImage(context.Background(), "backend", &commonDto.UploadFile{Reader: strings.NewReader("x")})
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestReindexSearch(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeSearch{indexed: 7}, nil)

	res, err := svc.ReindexSearch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, res.Indexed)
}

func TestPruneOrphanedOverlays(t *testing.T) {
	repo := newFakeRepo()
	repo.pruned = dto.PruneResponse{Skills: 2, Projects: 1}
	svc := newTestService(repo, &fakeSearch{}, nil)

	res, err := svc.PruneOrphanedOverlays(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total())

	repo.err = errors.New("db down")
	_, err = svc.PruneOrphanedOverlays(context.Background())
	assert.Error(t, err)
}
