package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	pdfFont         = "Helvetica"
	pdfMarginX      = 20.0
	pdfMarginY      = 15.0
	pdfContentWidth = 210.0 - 2*pdfMarginX

	maxSkillCategories = 3
	maxWorkEntries     = 3
	maxEducation       = 2
	maxProjects        = 6
)

type rgb struct{ r, g, b int }

var (
	colorPrimary    = rgb{0, 0, 0}
	colorSecondary  = rgb{0x55, 0x55, 0x55}
	colorMuted      = rgb{0x88, 0x88, 0x88}
	colorBackground = rgb{0xF8, 0xF8, 0xF8}
	colorAccent     = rgb{0x25, 0x63, 0xEB}
)

// pdfDoc wraps fpdf with the A4 layout and the cp1252 translation that the
// core fonts need for umlauts.
type pdfDoc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newPDFDoc(title, author string, now time.Time) *pdfDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginX, pdfMarginY, pdfMarginX)
	pdf.SetAutoPageBreak(true, pdfMarginY)
	pdf.SetTitle(title, true)
	pdf.SetAuthor(author, true)
	pdf.SetCreator("lebenslauf", true)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.AliasNbPages("")

	d := &pdfDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMarginY + 3)
		d.font("", 8, colorMuted)
		pdf.CellFormat(0, 5, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	return d
}

func (d *pdfDoc) font(style string, size float64, c rgb) {
	d.pdf.SetFont(pdfFont, style, size)
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *pdfDoc) line(h float64, text string) {
	d.pdf.CellFormat(0, h, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *pdfDoc) paragraph(h float64, text string) {
	d.pdf.MultiCell(0, h, d.tr(text), "", "L", false)
}

func (d *pdfDoc) rule(width float64) {
	y := d.pdf.GetY()
	d.pdf.SetDrawColor(colorPrimary.r, colorPrimary.g, colorPrimary.b)
	d.pdf.SetLineWidth(width)
	d.pdf.Line(pdfMarginX, y, pdfMarginX+pdfContentWidth, y)
}

func (d *pdfDoc) section(title string) {
	d.pdf.Ln(6)
	d.font("B", 10, colorPrimary)
	d.line(6, title)
	d.pdf.Ln(1)
}

func (d *pdfDoc) label(text string) {
	d.font("", 8, colorMuted)
	d.line(4, text)
}

func (d *pdfDoc) bullets(items []string) {
	d.font("", 9, colorPrimary)
	for _, item := range items {
		d.paragraph(4.5, "• "+item)
	}
}

func (d *pdfDoc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write pdf")
	}
	return buf.Bytes(), nil
}

// RenderCvPDF renders the one-page CV summary.
func RenderCvPDF(cv *cvDto.CvResponse, now time.Time) ([]byte, error) {
	p := cv.PersonalData
	d := newPDFDoc("Lebenslauf "+p.Name, p.Name, now)

	d.font("B", 28, colorPrimary)
	d.line(12, displayName(p))
	d.font("", 10, colorSecondary)
	d.line(6, headline)
	if birth := birthLine(p, now); birth != "" {
		d.font("", 9, colorMuted)
		d.line(5, birth)
	}

	d.pdf.Ln(3)
	contacts := [][2]string{
		{"EMAIL", p.Email},
		{"TELEFON", p.Phone},
		{"STANDORT", location(p)},
	}
	colWidth := pdfContentWidth / float64(len(contacts))
	d.font("", 8, colorMuted)
	for _, c := range contacts {
		d.pdf.CellFormat(colWidth, 4, d.tr(c[0]), "", 0, "L", false, 0, "")
	}
	d.pdf.Ln(4)
	d.font("", 9, colorPrimary)
	for _, c := range contacts {
		d.pdf.CellFormat(colWidth, 5, d.tr(c[1]), "", 0, "L", false, 0, "")
	}
	d.pdf.Ln(8)
	d.rule(0.7)

	d.section(sectionSkills)
	for i, category := range cv.SkillCategories {
		if i == maxSkillCategories {
			break
		}
		d.label(strings.ToUpper(category.Name))
		d.font("B", 9, colorPrimary)
		d.paragraph(5, skillLine(category, " · "))
		d.pdf.Ln(1)
	}

	d.section(sectionWork)
	for i, w := range cv.WorkExperience {
		if i == maxWorkEntries {
			break
		}
		renderEntry(d, workRange(w), w.Role, w.Company, deref(w.Description), w.IsHighlighted)
	}

	d.section(sectionEducation)
	for i, e := range cv.Education {
		if i == maxEducation {
			break
		}
		renderEntry(d, yearRange(e.StartYear, e.EndYear), e.Institution, e.Degree, deref(e.Description), false)
	}

	if len(cv.Projects) > 0 {
		d.section(sectionProjects)
		for i, project := range cv.Projects {
			if i == maxProjects {
				break
			}
			d.font("B", 9, colorPrimary)
			d.line(5, project.Name)
			if desc := deref(project.Description); desc != "" {
				d.font("", 8, colorSecondary)
				d.paragraph(4, desc)
			}
			d.pdf.Ln(2)
		}
	}

	return d.bytes()
}

func renderEntry(d *pdfDoc, period, title, subtitle, description string, highlighted bool) {
	if highlighted {
		d.pdf.SetFillColor(colorBackground.r, colorBackground.g, colorBackground.b)
	}
	d.font("", 9, colorMuted)
	d.pdf.CellFormat(0, 5, d.tr(period), "", 1, "L", highlighted, 0, "")
	d.font("B", 10, colorPrimary)
	d.pdf.CellFormat(0, 5, d.tr(title), "", 1, "L", highlighted, 0, "")
	d.font("", 9, colorSecondary)
	d.pdf.CellFormat(0, 5, d.tr(subtitle), "", 1, "L", highlighted, 0, "")
	if description != "" {
		d.font("", 8, colorSecondary)
		d.paragraph(4, description)
	}
	d.pdf.Ln(3)
}

// RenderProjectsPDF renders every project of the view with its details.
func RenderProjectsPDF(cv *cvDto.CvResponse, now time.Time) ([]byte, error) {
	d := newPDFDoc("Projekte "+cv.PersonalData.Name, cv.PersonalData.Name, now)

	d.font("B", 24, colorPrimary)
	d.pdf.CellFormat(pdfContentWidth-40, 10, d.tr(sectionOverview), "", 0, "L", false, 0, "")
	d.font("", 10, colorMuted)
	d.pdf.CellFormat(40, 10, d.tr(fmt.Sprintf("%d Projekte", len(cv.Projects))), "", 1, "R", false, 0, "")
	d.font("", 12, colorSecondary)
	d.line(6, cv.PersonalData.Name)
	d.pdf.Ln(3)
	d.rule(0.7)
	d.pdf.Ln(6)

	for _, project := range cv.Projects {
		renderProject(d, project)
	}

	return d.bytes()
}

func renderProject(d *pdfDoc, project cvDto.ProjectResponse) {
	period := projectPeriod(project)

	d.font("B", 14, colorPrimary)
	d.pdf.CellFormat(pdfContentWidth-45, 7, d.tr(project.Name), "", 0, "L", false, 0, "")
	d.font("", 9, colorMuted)
	d.pdf.CellFormat(45, 7, d.tr(period), "", 1, "R", false, 0, "")

	if framework := deref(project.Framework); framework != "" {
		d.font("", 9, colorAccent)
		d.line(5, framework)
	}
	if desc := deref(project.Description); desc != "" {
		d.pdf.Ln(1)
		d.font("", 9, colorSecondary)
		d.paragraph(4.5, desc)
	}

	if len(project.Technologies) > 0 {
		d.pdf.Ln(2)
		d.label(labelTechnologies)
		d.font("B", 9, colorPrimary)
		d.paragraph(4.5, strings.Join(project.Technologies, " · "))
	}
	if len(project.Functions) > 0 {
		d.pdf.Ln(2)
		d.label(labelFunctions)
		d.bullets(project.Functions)
	}
	if len(project.TechnicalAspects) > 0 {
		d.pdf.Ln(2)
		d.label(labelAspects)
		d.bullets(project.TechnicalAspects)
	}
	if len(project.SubProjects) > 0 {
		d.pdf.Ln(2)
		d.label(labelSubProjects)
		for _, sub := range project.SubProjects {
			d.font("B", 9, colorPrimary)
			name := sub.Name
			if fw := deref(sub.Framework); fw != "" {
				name += " (" + fw + ")"
			}
			d.line(5, name)
			if desc := deref(sub.Description); desc != "" {
				d.font("", 8, colorSecondary)
				d.paragraph(4, desc)
			}
			if len(sub.Technologies) > 0 {
				d.font("", 8, colorMuted)
				d.paragraph(4, strings.Join(sub.Technologies, " · "))
			}
		}
	}

	d.pdf.Ln(6)
}
