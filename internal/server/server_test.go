package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"anoa.com/lebenslauf/internal/config"
	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
	cvService "anoa.com/lebenslauf/internal/modules/cv/service"
	exportService "anoa.com/lebenslauf/internal/modules/export/service"
	searchService "anoa.com/lebenslauf/internal/modules/search/service"
	commonDto "anoa.com/lebenslauf/pkg/dto"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubCv struct {
	cvService.CvService
	slugs []string
}

func (s *stubCv) GetCv(_ context.Context, slug string) (*cvDto.CvResponse, error) {
	s.slugs = append(s.slugs, slug)
	return &cvDto.CvResponse{}, nil
}

func (s *stubCv) GetProfiles(context.Context) (*cvDto.ProfilesResponse, error) {
	return &cvDto.ProfilesResponse{}, nil
}

type stubExport struct {
	formats []exportService.Format
}

func (s *stubExport) Export(_ context.Context, format exportService.Format, _ string) (*commonDto.FileResponse, error) {
	s.formats = append(s.formats, format)
	return &commonDto.FileResponse{FileName: "Lebenslauf.pdf", ContentType: exportService.ContentTypePDF, FileBytes: []byte("%PDF-")}, nil
}

func newTestServer(cv *stubCv, exp *stubExport) *Server {
	cfg := &config.Config{AppEnv: "test", JWTSecret: "secret"}
	svc := &Services{
		Cv:     cv,
		Export: exp,
		Search: searchService.NewProjectSearchService(nil, nil, zap.NewNop()),
	}
	return NewServer(Deps{Config: cfg, Log: zap.NewNop()}, svc)
}

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRoutes_Cv(t *testing.T) {
	cv := &stubCv{}
	s := newTestServer(cv, &stubExport{})

	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/profiles").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/cv").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/cv/backend").Code)
	assert.Equal(t, []string{"", "backend"}, cv.slugs)
}

func TestRoutes_Export(t *testing.T) {
	exp := &stubExport{}
	s := newTestServer(&stubCv{}, exp)

	for _, path := range []string{"/api/export/cv/pdf", "/api/export/cv/docx", "/api/export/cv/markdown", "/api/export/projects/pdf"} {
		w := serve(s, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Equal(t, []exportService.Format{
		exportService.FormatCvPDF,
		exportService.FormatCvDOCX,
		exportService.FormatCvMarkdown,
		exportService.FormatProjectsPDF,
	}, exp.formats)
}

func TestRoutes_SearchWithoutMeili(t *testing.T) {
	s := newTestServer(&stubCv{}, &stubExport{})
	assert.Equal(t, http.StatusServiceUnavailable, serve(s, http.MethodGet, "/api/projects/search?q=go").Code)
}

func TestRoutes_AdminRequiresToken(t *testing.T) {
	cfg := &config.Config{AppEnv: "test", JWTSecret: "secret"}
	svc := &Services{Cv: &stubCv{}, Export: &stubExport{}}
	s := NewServer(Deps{Config: cfg, Log: zap.NewNop()}, svc)

	assert.Equal(t, http.StatusUnauthorized, serve(s, http.MethodDelete, "/api/admin/projects/00000000-0000-0000-0000-000000000001").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(s, http.MethodPost, "/api/admin/search/reindex").Code)
}

func TestHealth_WithoutDatabase(t *testing.T) {
	s := newTestServer(&stubCv{}, &stubExport{})

	w := serve(s, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
