package service

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *cvDto.Date {
	date := cvDto.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &date
}

func sampleCv() *cvDto.CvResponse {
	end := 2014
	return &cvDto.CvResponse{
		PersonalData: cvDto.PersonalDataResponse{
			AcademicTitle: strPtr("Ing."),
			Name:          "Daniel Müller",
			Title:         "Senior Developer",
			Email:         "daniel@example.com",
			Phone:         "+43 660 1234567",
			City:          "Wien",
			Country:       "Österreich",
			BirthDate:     cvDto.NewDate(time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)),
		},
		Education: []cvDto.EducationResponse{
			{ID: uuid.New(), Institution: "HTL Rennweg", Degree: "Matura", StartYear: 2009, EndYear: &end},
		},
		WorkExperience: []cvDto.WorkExperienceResponse{
			{ID: uuid.New(), Company: "Anoa GmbH", Role: "Lead Developer", StartDate: *datePtr(2020, 1, 1), IsCurrent: true, IsHighlighted: true, Description: strPtr("Built <b>fast</b> APIs & tools<script>alert(1)</script>")},
		},
		SkillCategories: []cvDto.SkillCategoryResponse{
			{ID: uuid.New(), Name: "Expertise", Skills: []cvDto.SkillResponse{{Name: "C#", IsHighlighted: true}, {Name: ".NET"}}},
		},
		Projects: []cvDto.ProjectResponse{
			{
				ID:               uuid.New(),
				Name:             "Shop App",
				Description:      strPtr("Mobile shop"),
				Framework:        strPtr("Flutter"),
				Technologies:     []string{"Dart", "Firebase"},
				Functions:        []string{"Warenkorb"},
				TechnicalAspects: []string{"Offline-Sync"},
				SubProjects: []cvDto.SubProjectResponse{
					{Name: "Admin Portal", Technologies: []string{"Blazor"}},
				},
				StartDate: datePtr(2023, 3, 1),
			},
		},
		GitHub: cvDto.GitHubContributionsResponse{
			Username:           "Codelisk",
			ProfileURL:         "https://github.com/Codelisk",
			TotalContributions: 42,
		},
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Lebenslauf_Daniel_Müller.pdf", fileName("Lebenslauf", "Daniel Müller", "pdf"))
	assert.Equal(t, "Projekte_Unknown.pdf", fileName("Projekte", "  ", "pdf"))
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 29, ageAt(birth, time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, ageAt(birth, time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)))
}

func TestProjectPeriod(t *testing.T) {
	p := cvDto.ProjectResponse{StartDate: datePtr(2023, 3, 1)}
	assert.Equal(t, "Mär 2023 – heute", projectPeriod(p))

	p.EndDate = datePtr(2024, 10, 31)
	assert.Equal(t, "Mär 2023 – Okt 2024", projectPeriod(p))

	assert.Empty(t, projectPeriod(cvDto.ProjectResponse{}))
}

func TestRenderCvPDF(t *testing.T) {
	body, err := RenderCvPDF(sampleCv(), fixedNow)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestRenderCvPDF_EmptyView(t *testing.T) {
	body, err := RenderCvPDF(&cvDto.CvResponse{PersonalData: cvDto.PersonalDataResponse{Name: "Unknown"}}, fixedNow)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestRenderProjectsPDF(t *testing.T) {
	body, err := RenderProjectsPDF(sampleCv(), fixedNow)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func readZipEntry(t *testing.T, archive []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func TestRenderCvDOCX(t *testing.T) {
	body, err := RenderCvDOCX(sampleCv(), fixedNow)
	require.NoError(t, err)

	readZipEntry(t, body, "[Content_Types].xml")
	doc := readZipEntry(t, body, "word/document.xml")

	assert.Contains(t, doc, "Ing. Daniel Müller")
	assert.Contains(t, doc, "FÄHIGKEITEN")
	assert.Contains(t, doc, "Expertise: C#, .NET")
	assert.Contains(t, doc, "APIs &amp; tools")
	assert.Contains(t, doc, "Technologien: Dart, Firebase")
	assert.Contains(t, doc, "Geb. 12.04.1995 · 29 Jahre")
	assert.Contains(t, doc, "REFERENZPROJEKTE")
	assert.Contains(t, doc, "888888")
	assert.NotContains(t, doc, "<b>")
}

func TestRenderCvDOCX_WithoutProjectsOmitsSection(t *testing.T) {
	cv := sampleCv()
	cv.Projects = nil

	body, err := RenderCvDOCX(cv, fixedNow)
	require.NoError(t, err)

	doc := readZipEntry(t, body, "word/document.xml")
	assert.Contains(t, doc, "AUSBILDUNG")
	assert.NotContains(t, doc, "REFERENZPROJEKTE")
}

func TestMarkdownRenderer_Render(t *testing.T) {
	body, err := NewMarkdownRenderer().Render(sampleCv(), fixedNow)
	require.NoError(t, err)
	md := string(body)

	require.True(t, strings.HasPrefix(md, "---\n"))
	assert.Contains(t, md, "name: Ing. Daniel M")
	assert.Contains(t, md, "2025-03-01")
	assert.Contains(t, md, "# Ing. Daniel Müller")
	assert.Contains(t, md, "- **Expertise:** **C#**, .NET")
	assert.Contains(t, md, "### Lead Developer, Anoa GmbH")
	assert.Contains(t, md, "**fast**")
	assert.NotContains(t, md, "script")
	assert.Contains(t, md, "_Flutter · Mär 2023 – heute_")
	assert.Contains(t, md, "- **Admin Portal** (Blazor)")
	assert.Contains(t, md, "42 Beiträge")
}
