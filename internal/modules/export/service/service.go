package service

import (
	"context"
	"time"

	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
	cv "anoa.com/lebenslauf/internal/modules/cv/service"
	"anoa.com/lebenslauf/pkg/apperror"
	commonDto "anoa.com/lebenslauf/pkg/dto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Format names a downloadable rendering of the CV.
type Format string

const (
	FormatCvPDF       Format = "pdf"
	FormatCvDOCX      Format = "docx"
	FormatCvMarkdown  Format = "markdown"
	FormatProjectsPDF Format = "projects-pdf"
)

func ParseFormat(s string) (Format, bool) {
	switch f := Format(s); f {
	case FormatCvPDF, FormatCvDOCX, FormatCvMarkdown, FormatProjectsPDF:
		return f, true
	}
	return "", false
}

type ExportService interface {
	Export(ctx context.Context, format Format, profileSlug string) (*commonDto.FileResponse, error)
}

type exportService struct {
	cvService cv.CvService
	markdown  *MarkdownRenderer
	now       func() time.Time
	log       *zap.Logger
}

func NewExportService(cvService cv.CvService, log *zap.Logger) ExportService {
	return &exportService{
		cvService: cvService,
		markdown:  NewMarkdownRenderer(),
		now:       time.Now,
		log:       log,
	}
}

// Export assembles the CV once for the profile and renders it.
func (s *exportService) Export(ctx context.Context, format Format, profileSlug string) (*commonDto.FileResponse, error) {
	if _, ok := ParseFormat(string(format)); !ok {
		return nil, errors.Wrapf(apperror.ErrBadRequest, "unknown export format %q", format)
	}

	data, err := s.cvService.GetCv(ctx, profileSlug)
	if err != nil {
		return nil, err
	}

	res, err := s.render(format, data)
	if err != nil {
		return nil, errors.Wrapf(err, "render %s", format)
	}

	s.log.Info("cv exported",
		zap.String("format", string(format)),
		zap.String("profile", profileSlug),
		zap.Int("bytes", len(res.FileBytes)))
	return res, nil
}

func (s *exportService) render(format Format, data *cvDto.CvResponse) (*commonDto.FileResponse, error) {
	now := s.now()
	name := data.PersonalData.Name

	var (
		body []byte
		err  error
		res  commonDto.FileResponse
	)
	switch format {
	case FormatCvPDF:
		body, err = RenderCvPDF(data, now)
		res.FileName, res.ContentType = fileName("Lebenslauf", name, "pdf"), ContentTypePDF
	case FormatCvDOCX:
		body, err = RenderCvDOCX(data, now)
		res.FileName, res.ContentType = fileName("Lebenslauf", name, "docx"), ContentTypeDOCX
	case FormatCvMarkdown:
		body, err = s.markdown.Render(data, now)
		res.FileName, res.ContentType = fileName("Lebenslauf", name, "md"), ContentTypeMarkdown
	case FormatProjectsPDF:
		body, err = RenderProjectsPDF(data, now)
		res.FileName, res.ContentType = fileName("Projekte", name, "pdf"), ContentTypePDF
	}
	if err != nil {
		return nil, err
	}
	res.FileBytes = body
	return &res, nil
}
