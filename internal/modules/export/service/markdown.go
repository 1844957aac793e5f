package service

import (
	"fmt"
	"strings"
	"time"

	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type markdownFrontMatter struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title,omitempty"`
	Email     string `yaml:"email,omitempty"`
	Phone     string `yaml:"phone,omitempty"`
	Location  string `yaml:"location,omitempty"`
	GitHub    string `yaml:"github,omitempty"`
	Generated string `yaml:"generated"`
}

// MarkdownRenderer renders the CV as markdown with a YAML front matter block.
// Free-text fields may carry inline HTML from the admin editor; it is
// sanitised and converted to markdown.
type MarkdownRenderer struct {
	sanitizer *bluemonday.Policy
}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{sanitizer: bluemonday.UGCPolicy()}
}

func (r *MarkdownRenderer) text(s string) string {
	if s == "" {
		return ""
	}
	md, err := htmltomarkdown.ConvertString(r.sanitizer.Sanitize(s))
	if err != nil {
		return strings.TrimSpace(bluemonday.StrictPolicy().Sanitize(s))
	}
	return strings.TrimSpace(md)
}

func (r *MarkdownRenderer) Render(cv *cvDto.CvResponse, now time.Time) ([]byte, error) {
	p := cv.PersonalData

	front, err := yaml.Marshal(markdownFrontMatter{
		Name:      displayName(p),
		Title:     p.Title,
		Email:     p.Email,
		Phone:     p.Phone,
		Location:  location(p),
		GitHub:    cv.GitHub.ProfileURL,
		Generated: now.Format("2006-01-02"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode front matter")
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(front)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", displayName(p))
	fmt.Fprintf(&b, "**%s**\n\n", headline)
	if birth := birthLine(p, now); birth != "" {
		b.WriteString(birth + "\n\n")
	}
	fmt.Fprintf(&b, "- Email: %s\n- Telefon: %s\n- Standort: %s\n\n", p.Email, p.Phone, location(p))

	fmt.Fprintf(&b, "## %s\n\n", sectionSkills)
	for _, category := range cv.SkillCategories {
		names := make([]string, 0, len(category.Skills))
		for _, s := range category.Skills {
			if s.IsHighlighted {
				names = append(names, "**"+s.Name+"**")
				continue
			}
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", category.Name, strings.Join(names, ", "))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", sectionWork)
	for _, w := range cv.WorkExperience {
		fmt.Fprintf(&b, "### %s, %s\n\n", w.Role, w.Company)
		fmt.Fprintf(&b, "_%s_\n\n", workRange(w))
		if desc := r.text(deref(w.Description)); desc != "" {
			b.WriteString(desc + "\n\n")
		}
	}

	fmt.Fprintf(&b, "## %s\n\n", sectionEducation)
	for _, e := range cv.Education {
		fmt.Fprintf(&b, "### %s\n\n", e.Institution)
		fmt.Fprintf(&b, "%s · _%s_\n\n", e.Degree, yearRange(e.StartYear, e.EndYear))
		if desc := r.text(deref(e.Description)); desc != "" {
			b.WriteString(desc + "\n\n")
		}
	}

	if len(cv.Projects) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", sectionProjects)
		for _, project := range cv.Projects {
			r.project(&b, project)
		}
	}

	if cv.GitHub.TotalContributions > 0 {
		b.WriteString("## GitHub\n\n")
		fmt.Fprintf(&b, "%d Beiträge · %s\n", cv.GitHub.TotalContributions, cv.GitHub.ProfileURL)
	}

	return []byte(b.String()), nil
}

func (r *MarkdownRenderer) project(b *strings.Builder, project cvDto.ProjectResponse) {
	fmt.Fprintf(b, "### %s\n\n", project.Name)

	var meta []string
	if fw := deref(project.Framework); fw != "" {
		meta = append(meta, fw)
	}
	if period := projectPeriod(project); period != "" {
		meta = append(meta, period)
	}
	if len(meta) > 0 {
		fmt.Fprintf(b, "_%s_\n\n", strings.Join(meta, " · "))
	}

	if desc := r.text(deref(project.Description)); desc != "" {
		b.WriteString(desc + "\n\n")
	}
	if len(project.Technologies) > 0 {
		fmt.Fprintf(b, "**Technologien:** %s\n\n", strings.Join(project.Technologies, ", "))
	}
	for _, f := range project.Functions {
		fmt.Fprintf(b, "- %s\n", f)
	}
	if len(project.Functions) > 0 {
		b.WriteString("\n")
	}
	for _, sub := range project.SubProjects {
		fmt.Fprintf(b, "- **%s**", sub.Name)
		if len(sub.Technologies) > 0 {
			fmt.Fprintf(b, " (%s)", strings.Join(sub.Technologies, ", "))
		}
		b.WriteString("\n")
	}
	if len(project.SubProjects) > 0 {
		b.WriteString("\n")
	}
}
