package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"anoa.com/lebenslauf/internal/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// memoryRepo is a CvRepository backed by slices.
type memoryRepo struct {
	profiles      []entity.Profile
	personal      []entity.PersonalData
	family        []entity.FamilyMember
	education     []entity.Education
	internships   []entity.Internship
	work          []entity.WorkExperience
	workOverlays  []entity.ProfileWorkExperience
	categories    []entity.SkillCategory
	skillOverlays []entity.ProfileSkill
	projects      []entity.Project
	projOverlays  []entity.ProfileProject
	contributions []entity.GitHubContribution

	failWith error
}

func (m *memoryRepo) FindDefaultProfile(ctx context.Context) (*entity.Profile, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var found *entity.Profile
	for i := range m.profiles {
		p := m.profiles[i]
		if p.IsDefault && (found == nil || p.Slug < found.Slug) {
			found = &p
		}
	}
	if found == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return found, nil
}

func (m *memoryRepo) FindProfileBySlug(ctx context.Context, slug string) (*entity.Profile, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.profiles {
		if m.profiles[i].Slug == slug {
			p := m.profiles[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) FindAllProfiles(ctx context.Context) ([]entity.Profile, error) {
	return m.profiles, m.failWith
}

func (m *memoryRepo) FindPersonalDataByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.PersonalData, error) {
	for i := range m.personal {
		if m.personal[i].ProfileID == profileID {
			d := m.personal[i]
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) FindFirstPersonalData(ctx context.Context) (*entity.PersonalData, error) {
	if len(m.personal) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	d := m.personal[0]
	return &d, nil
}

func (m *memoryRepo) FindFamilyMembers(ctx context.Context) ([]entity.FamilyMember, error) {
	return m.family, nil
}

func (m *memoryRepo) FindEducation(ctx context.Context) ([]entity.Education, error) {
	return m.education, nil
}

func (m *memoryRepo) FindInternships(ctx context.Context) ([]entity.Internship, error) {
	return m.internships, nil
}

func (m *memoryRepo) FindWorkExperiences(ctx context.Context) ([]entity.WorkExperience, error) {
	return m.work, nil
}

func (m *memoryRepo) FindWorkExperiencesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.WorkExperience, error) {
	var out []entity.WorkExperience
	for _, w := range m.work {
		for _, id := range ids {
			if w.ID == id {
				out = append(out, w)
			}
		}
	}
	return out, nil
}

func (m *memoryRepo) FindProfileWorkExperiences(ctx context.Context, profileID uuid.UUID) ([]entity.ProfileWorkExperience, error) {
	var out []entity.ProfileWorkExperience
	for _, o := range m.workOverlays {
		if o.ProfileID == profileID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memoryRepo) FindSkillCategories(ctx context.Context) ([]entity.SkillCategory, error) {
	return m.categories, nil
}

func (m *memoryRepo) FindProfileSkills(ctx context.Context, profileID uuid.UUID) ([]entity.ProfileSkill, error) {
	var out []entity.ProfileSkill
	for _, o := range m.skillOverlays {
		if o.ProfileID == profileID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memoryRepo) FindProjects(ctx context.Context) ([]entity.Project, error) {
	return m.projects, nil
}

func (m *memoryRepo) FindProjectsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Project, error) {
	var out []entity.Project
	for _, p := range m.projects {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (m *memoryRepo) FindProfileProjects(ctx context.Context, profileID uuid.UUID) ([]entity.ProfileProject, error) {
	var out []entity.ProfileProject
	for _, o := range m.projOverlays {
		if o.ProfileID == profileID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memoryRepo) FindGitHubContributions(ctx context.Context) ([]entity.GitHubContribution, error) {
	return m.contributions, nil
}

func seededRepo() (*memoryRepo, entity.Profile, entity.Profile) {
	defaultProfile := entity.Profile{ID: uuid.New(), Slug: "default", Name: "Default", IsDefault: true}
	backend := entity.Profile{ID: uuid.New(), Slug: "backend", Name: "Backend"}

	expertise, ids := expertiseCategory()
	shop := entity.Project{ID: uuid.New(), Name: "Shop", Description: strPtr("base"), StartDate: day(2022, 5, 1)}
	chat := entity.Project{ID: uuid.New(), Name: "Chat", StartDate: day(2020, 5, 1)}
	jobA := entity.WorkExperience{ID: uuid.New(), Company: "Anoa", StartDate: *day(2020, 1, 1), SortOrder: 1}
	jobB := entity.WorkExperience{ID: uuid.New(), Company: "Telkom", StartDate: *day(2022, 1, 1), SortOrder: 2}

	repo := &memoryRepo{
		profiles: []entity.Profile{defaultProfile, backend},
		personal: []entity.PersonalData{
			{ID: uuid.New(), ProfileID: defaultProfile.ID, Name: "Daniel", Title: "Mobile Developer", BirthDate: *day(1995, 4, 12)},
			{ID: uuid.New(), ProfileID: backend.ID, Name: "Daniel", Title: "Backend Developer", BirthDate: *day(1995, 4, 12)},
		},
		family:     []entity.FamilyMember{{ID: uuid.New(), Relationship: "Vater", Profession: "Ingenieur"}},
		education:  []entity.Education{{ID: uuid.New(), Institution: "HTL", Degree: "Matura", StartYear: 2010}},
		work:       []entity.WorkExperience{jobA, jobB},
		categories: []entity.SkillCategory{expertise},
		projects:   []entity.Project{shop, chat},
		skillOverlays: []entity.ProfileSkill{
			{ProfileID: backend.ID, SkillID: ids["C#"], SortOrder: 1, IsHighlighted: true},
			{ProfileID: backend.ID, SkillID: ids[".NET"], SortOrder: 2},
		},
		projOverlays: []entity.ProfileProject{
			{ProfileID: backend.ID, ProjectID: shop.ID, DescriptionOverride: strPtr("backend shop")},
		},
		workOverlays: []entity.ProfileWorkExperience{
			{ProfileID: backend.ID, WorkExperienceID: jobA.ID, SortOrder: 2},
			{ProfileID: backend.ID, WorkExperienceID: jobB.ID, SortOrder: 1},
		},
		contributions: []entity.GitHubContribution{
			{Date: *day(2024, 1, 1), Count: 2},
			{Date: *day(2024, 1, 2), Count: 5},
		},
	}
	return repo, defaultProfile, backend
}

func TestResolveProfile(t *testing.T) {
	repo, defaultProfile, backend := seededRepo()
	svc := NewCvService(repo, "Codelisk", zap.NewNop())
	ctx := context.Background()

	t.Run("empty slug resolves the default", func(t *testing.T) {
		p, err := svc.ResolveProfile(ctx, "")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, defaultProfile.ID, p.ID)
	})

	t.Run("known slug", func(t *testing.T) {
		p, err := svc.ResolveProfile(ctx, "backend")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, backend.ID, p.ID)
	})

	t.Run("unknown slug is not an error", func(t *testing.T) {
		p, err := svc.ResolveProfile(ctx, "nonexistent-slug")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		broken := &memoryRepo{failWith: errors.New("connection refused")}
		_, err := NewCvService(broken, "Codelisk", zap.NewNop()).ResolveProfile(ctx, "backend")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestResolveProfile_NoDefault(t *testing.T) {
	repo := &memoryRepo{profiles: []entity.Profile{{ID: uuid.New(), Slug: "mobile"}}}
	p, err := NewCvService(repo, "Codelisk", zap.NewNop()).ResolveProfile(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetCv_UnknownSlugServesEverything(t *testing.T) {
	repo, _, _ := seededRepo()
	svc := NewCvService(repo, "Codelisk", zap.NewNop())

	cv, err := svc.GetCv(context.Background(), "nonexistent-slug")
	require.NoError(t, err)

	assert.Len(t, cv.Projects, 2)
	assert.Len(t, cv.WorkExperience, 2)
	require.Len(t, cv.SkillCategories, 1)
	assert.Len(t, cv.SkillCategories[0].Skills, 5)
	assert.Equal(t, "Mobile Developer", cv.PersonalData.Title)
}

func TestGetCv_BackendProfile(t *testing.T) {
	repo, _, _ := seededRepo()
	svc := NewCvService(repo, "Codelisk", zap.NewNop())

	cv, err := svc.GetCv(context.Background(), "backend")
	require.NoError(t, err)

	assert.Equal(t, "Backend Developer", cv.PersonalData.Title)

	require.Len(t, cv.Projects, 1)
	assert.Equal(t, "backend shop", *cv.Projects[0].Description)

	require.Len(t, cv.WorkExperience, 2)
	assert.Equal(t, "Telkom", cv.WorkExperience[0].Company)
	assert.Equal(t, "Anoa", cv.WorkExperience[1].Company)

	require.Len(t, cv.SkillCategories, 1)
	assert.Len(t, cv.SkillCategories[0].Skills, 2)

	assert.Len(t, cv.FamilyMembers, 1)
	assert.Len(t, cv.Education, 1)
	assert.Empty(t, cv.Internships)

	assert.Equal(t, 7, cv.GitHub.TotalContributions)
	assert.Equal(t, "https://github.com/Codelisk", cv.GitHub.ProfileURL)
}

func TestGetCv_PersonalDataFallsBackToFirstRow(t *testing.T) {
	repo, _, _ := seededRepo()
	mobile := entity.Profile{ID: uuid.New(), Slug: "mobile", Name: "Mobile"}
	repo.profiles = append(repo.profiles, mobile)

	cv, err := NewCvService(repo, "Codelisk", zap.NewNop()).GetCv(context.Background(), "mobile")
	require.NoError(t, err)
	assert.Equal(t, "Mobile Developer", cv.PersonalData.Title)
	assert.Empty(t, cv.Projects)
	assert.Empty(t, cv.SkillCategories)
}

func TestGetCv_EmptyStoreUsesPlaceholder(t *testing.T) {
	cv, err := NewCvService(&memoryRepo{}, "Codelisk", zap.NewNop()).GetCv(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", cv.PersonalData.Name)
	assert.NotNil(t, cv.Projects)
	assert.NotNil(t, cv.FamilyMembers)
	assert.Equal(t, 0, cv.GitHub.TotalContributions)
}

func TestGetCv_Idempotent(t *testing.T) {
	repo, _, _ := seededRepo()
	svc := NewCvService(repo, "Codelisk", zap.NewNop())
	ctx := context.Background()

	first, err := svc.GetCv(ctx, "backend")
	require.NoError(t, err)
	second, err := svc.GetCv(ctx, "backend")
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestGetProfiles(t *testing.T) {
	repo, _, _ := seededRepo()
	res, err := NewCvService(repo, "Codelisk", zap.NewNop()).GetProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Profiles, 2)
	assert.True(t, res.Profiles[0].IsDefault)
	assert.Equal(t, "backend", res.Profiles[1].Slug)
}

func TestPersonalDataDateIsCalendarDate(t *testing.T) {
	repo, _, _ := seededRepo()
	repo.personal[0].BirthDate = time.Date(1995, 4, 12, 23, 30, 0, 0, time.UTC)

	cv, err := NewCvService(repo, "Codelisk", zap.NewNop()).GetCv(context.Background(), "")
	require.NoError(t, err)

	raw, err := json.Marshal(cv.PersonalData)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"birthDate":"1995-04-12"`)
}
