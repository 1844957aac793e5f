package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/pkg/errors"
)

// docxStyle is the run formatting of one kind of paragraph. Size is in points.
type docxStyle struct {
	size  uint
	bold  bool
	color string
}

var (
	docxSubtitle     = docxStyle{size: 10, color: "555555"}
	docxDateRange    = docxStyle{size: 9, color: "888888"}
	docxJobTitle     = docxStyle{size: 11, bold: true, color: "000000"}
	docxCompany      = docxStyle{size: 10, color: "555555"}
	docxDescription  = docxStyle{size: 9, color: "555555"}
	docxProjectName  = docxStyle{size: 10, bold: true, color: "000000"}
	docxTechnologies = docxStyle{size: 9, color: "888888"}
)

type docxWriter struct {
	doc *docx.RootDoc
	err error
}

func (w *docxWriter) heading(text string, level uint) {
	if w.err != nil {
		return
	}
	_, w.err = w.doc.AddHeading(text, level)
}

func (w *docxWriter) plain(text string) {
	w.doc.AddParagraph(text)
}

func (w *docxWriter) styled(text string, s docxStyle) {
	p := w.doc.AddEmptyParagraph()
	p.AddText(text).Size(uint64(s.size)).Bold(s.bold).Color(s.color)
}

func (w *docxWriter) blank() {
	w.doc.AddEmptyParagraph()
}

// RenderCvDOCX renders the CV as an Office Open XML word document.
func RenderCvDOCX(cv *cvDto.CvResponse, now time.Time) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create docx document")
	}

	p := cv.PersonalData
	w := &docxWriter{doc: doc}

	w.heading(displayName(p), 0)
	w.styled(headline, docxSubtitle)
	if birth := birthLine(p, now); birth != "" {
		w.plain(birth)
	}
	w.plain(fmt.Sprintf("Email: %s | Telefon: %s", p.Email, p.Phone))
	w.plain("Standort: " + location(p))
	w.blank()

	w.heading(sectionSkills, 1)
	for _, category := range cv.SkillCategories {
		w.plain(category.Name + ": " + skillLine(category, ", "))
	}

	w.heading(sectionWork, 1)
	for _, work := range cv.WorkExperience {
		w.styled(workRange(work), docxDateRange)
		w.styled(work.Role, docxJobTitle)
		w.styled(work.Company, docxCompany)
		if desc := deref(work.Description); desc != "" {
			w.styled(desc, docxDescription)
		}
		w.blank()
	}

	w.heading(sectionEducation, 1)
	for _, e := range cv.Education {
		w.styled(yearRange(e.StartYear, e.EndYear), docxDateRange)
		w.styled(e.Institution, docxJobTitle)
		w.styled(e.Degree, docxCompany)
		if desc := deref(e.Description); desc != "" {
			w.styled(desc, docxDescription)
		}
		w.blank()
	}

	if len(cv.Projects) > 0 {
		w.heading(sectionProjects, 1)
		for _, project := range cv.Projects {
			w.styled(project.Name, docxProjectName)
			if desc := deref(project.Description); desc != "" {
				w.styled(desc, docxDescription)
			}
			if len(project.Technologies) > 0 {
				w.styled("Technologien: "+strings.Join(project.Technologies, ", "), docxTechnologies)
			}
			w.blank()
		}
	}

	if w.err != nil {
		return nil, errors.Wrap(w.err, "failed to add docx heading")
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write docx document")
	}
	return buf.Bytes(), nil
}
