package bootstrap

import (
	"testing"
	"time"

	"anoa.com/lebenslauf/internal/modules/cv/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContributions(t *testing.T) {
	rows := GenerateContributions(contributionsFrom, contributionsTo, contributionsTotal, ContributionSeed)

	require.Len(t, rows, 376)
	assert.True(t, rows[0].Date.Equal(contributionsFrom))
	assert.True(t, rows[len(rows)-1].Date.Equal(contributionsTo))

	total := 0
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.Count, 0)
		assert.Equal(t, int(r.Date.Weekday()), r.DayOfWeek)
		total += r.Count
	}
	assert.Equal(t, contributionsTotal, total)

	// 2025-01-01 is a Wednesday in ISO week 1; 2025-12-29 already belongs to week 1 of 2026.
	assert.Equal(t, 3, rows[0].DayOfWeek)
	assert.Equal(t, 1, rows[0].WeekNumber)
	assert.Equal(t, 1, rows[362].WeekNumber)
	assert.True(t, rows[362].Date.Equal(date(2025, time.December, 29)))
}

func TestGenerateContributions_Deterministic(t *testing.T) {
	a := GenerateContributions(contributionsFrom, contributionsTo, contributionsTotal, ContributionSeed)
	b := GenerateContributions(contributionsFrom, contributionsTo, contributionsTotal, ContributionSeed)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Count, b[i].Count)
	}
}

func TestGenerateContributions_EmptyRange(t *testing.T) {
	assert.Empty(t, GenerateContributions(contributionsTo, contributionsFrom, 10, 1))
}

func TestNewSampleData(t *testing.T) {
	data := NewSampleData()

	require.Len(t, data.Profiles, 3)
	assert.Equal(t, DefaultProfileID, data.Profiles[0].ID)
	assert.True(t, data.Profiles[0].IsDefault)
	assert.False(t, data.Profiles[1].IsDefault)
	assert.Len(t, data.PersonalData, 3)

	skills := map[uuid.UUID]bool{}
	total := 0
	for _, c := range data.SkillCategories {
		for _, s := range c.Skills {
			assert.Equal(t, c.ID, s.CategoryID)
			skills[s.ID] = true
			total++
		}
	}

	// Every overlay points at a base row of the set.
	var defaultSkills int
	for _, o := range data.ProfileSkills {
		assert.True(t, skills[o.SkillID])
		if o.ProfileID == DefaultProfileID {
			defaultSkills++
		}
	}
	assert.Equal(t, total, defaultSkills)

	projects := map[uuid.UUID]bool{}
	for _, p := range data.Projects {
		projects[p.ID] = true
	}
	for _, o := range data.ProfileProjects {
		assert.True(t, projects[o.ProjectID])
	}

	work := map[uuid.UUID]bool{}
	for _, w := range data.WorkExperiences {
		work[w.ID] = true
	}
	for _, o := range data.ProfileWorkExperiences {
		assert.True(t, work[o.WorkExperienceID])
	}
}

func TestNewSampleData_BackendViewMerges(t *testing.T) {
	data := NewSampleData()

	var overlays = data.ProfileProjects[:0:0]
	for _, o := range data.ProfileProjects {
		if o.ProfileID == BackendProfileID {
			overlays = append(overlays, o)
		}
	}

	merged := service.MergeProjects(data.Projects, overlays)
	require.Len(t, merged, 3)
	// Timeline order: current projects first, newest start first.
	assert.Equal(t, "Gemeinde Audit", merged[0].Name)
	assert.Equal(t, "Kassa Pro", merged[1].Name)
	assert.Equal(t, "Lager Scan", merged[2].Name)
	assert.True(t, merged[0].IsHighlighted)
	require.NotNil(t, merged[0].Description)
	assert.Contains(t, *merged[0].Description, "Multi-Tenant")
}
