package service

import (
	"fmt"
	"strings"
	"time"

	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
)

const (
	ContentTypePDF      = "application/pdf"
	ContentTypeDOCX     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeMarkdown = "text/markdown; charset=utf-8"

	headline     = "SENIOR CROSS-PLATFORM DEVELOPER"
	openEndLabel = "heute"
)

// Section titles shared by every renderer.
const (
	sectionSkills     = "FÄHIGKEITEN"
	sectionWork       = "BERUFSERFAHRUNG"
	sectionEducation  = "AUSBILDUNG"
	sectionProjects   = "REFERENZPROJEKTE"
	sectionOverview   = "PROJEKTÜBERSICHT"
	labelTechnologies = "TECHNOLOGIEN"
	labelFunctions    = "FUNKTIONEN"
	labelAspects      = "TECHNISCHE ASPEKTE"
	labelSubProjects  = "TEILPROJEKTE"
)

var germanMonths = [...]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}

// fileName turns "Max Mustermann" into "Lebenslauf_Max_Mustermann.pdf".
func fileName(prefix, personName, ext string) string {
	safe := strings.ReplaceAll(strings.TrimSpace(personName), " ", "_")
	if safe == "" {
		safe = "Unknown"
	}
	return fmt.Sprintf("%s_%s.%s", prefix, safe, ext)
}

func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

func birthLine(p cvDto.PersonalDataResponse, now time.Time) string {
	if p.BirthDate.IsZero() {
		return ""
	}
	return fmt.Sprintf("Geb. %s · %d Jahre", p.BirthDate.Format("02.01.2006"), ageAt(p.BirthDate.Time, now))
}

func displayName(p cvDto.PersonalDataResponse) string {
	if p.AcademicTitle != nil && *p.AcademicTitle != "" {
		return *p.AcademicTitle + " " + p.Name
	}
	return p.Name
}

func location(p cvDto.PersonalDataResponse) string {
	switch {
	case p.City != "" && p.Country != "":
		return p.City + ", " + p.Country
	case p.City != "":
		return p.City
	default:
		return p.Country
	}
}

func yearRange(start int, end *int) string {
	if end == nil {
		return fmt.Sprintf("%d – %s", start, openEndLabel)
	}
	return fmt.Sprintf("%d – %d", start, *end)
}

func workRange(w cvDto.WorkExperienceResponse) string {
	if w.EndDate == nil {
		return yearRange(w.StartDate.Year(), nil)
	}
	end := w.EndDate.Year()
	return yearRange(w.StartDate.Year(), &end)
}

func monthYear(d cvDto.Date) string {
	return fmt.Sprintf("%s %d", germanMonths[d.Month()-1], d.Year())
}

// projectPeriod is empty for projects without a start date.
func projectPeriod(p cvDto.ProjectResponse) string {
	if p.StartDate == nil {
		return ""
	}
	end := openEndLabel
	if p.EndDate != nil {
		end = monthYear(*p.EndDate)
	}
	return monthYear(*p.StartDate) + " – " + end
}

func skillLine(c cvDto.SkillCategoryResponse, sep string) string {
	names := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, sep)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
