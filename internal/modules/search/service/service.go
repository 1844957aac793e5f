package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"anoa.com/lebenslauf/internal/entity"
	"anoa.com/lebenslauf/internal/modules/search/dto"
	"anoa.com/lebenslauf/pkg/apperror"
	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	ProjectsIndex = "projects"
	defaultLimit  = 20
)

// DocumentIndex is the subset of meilisearch.IndexManager the project index uses.
type DocumentIndex interface {
	AddDocuments(documentsPtr interface{}, primaryKey *string) (*meilisearch.TaskInfo, error)
	DeleteDocument(identifier string) (*meilisearch.TaskInfo, error)
	SearchRaw(query string, request *meilisearch.SearchRequest) (*json.RawMessage, error)
	UpdateSearchableAttributes(request *[]string) (*meilisearch.TaskInfo, error)
	UpdateFilterableAttributes(request *[]interface{}) (*meilisearch.TaskInfo, error)
	UpdateSortableAttributes(request *[]string) (*meilisearch.TaskInfo, error)
}

// ProjectSource lists every base project with its nested lists.
type ProjectSource interface {
	FindProjects(ctx context.Context) ([]entity.Project, error)
}

type ProjectSearchService interface {
	InitIndex(ctx context.Context) error
	IndexProjects(ctx context.Context, projects []entity.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	Reindex(ctx context.Context) (int, error)
	SearchProjects(ctx context.Context, query string, limit int) (*dto.SearchProjectsResponse, error)
}

type projectSearchService struct {
	index     DocumentIndex
	source    ProjectSource
	sanitizer *bluemonday.Policy
	log       *zap.Logger
}

// NewProjectSearchService accepts a nil index; searching then reports the
// service as unavailable and indexing is skipped.
func NewProjectSearchService(index DocumentIndex, source ProjectSource, log *zap.Logger) ProjectSearchService {
	return &projectSearchService{
		index:     index,
		source:    source,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
}

type meiliProjectDoc struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Framework    string   `json:"framework"`
	Technologies []string `json:"technologies"`
	SubProjects  []string `json:"sub_projects"`
	IsCurrent    bool     `json:"is_current"`
	StartDate    int64    `json:"start_date"`
}

func (s *projectSearchService) InitIndex(ctx context.Context) error {
	if s.index == nil {
		return nil
	}

	searchable := []string{"name", "technologies", "framework", "description", "sub_projects"}
	if _, err := s.index.UpdateSearchableAttributes(&searchable); err != nil {
		return fmt.Errorf("update searchable attributes: %w", err)
	}

	filterable := []interface{}{"is_current", "framework"}
	if _, err := s.index.UpdateFilterableAttributes(&filterable); err != nil {
		return fmt.Errorf("update filterable attributes: %w", err)
	}

	sortable := []string{"start_date"}
	if _, err := s.index.UpdateSortableAttributes(&sortable); err != nil {
		return fmt.Errorf("update sortable attributes: %w", err)
	}

	s.log.Info("meilisearch project index initialized")
	return nil
}

func (s *projectSearchService) cleanContentForIndex(content string) string {
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	sanitized := s.sanitizer.Sanitize(content)
	cleanText := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *projectSearchService) toDocument(p entity.Project) meiliProjectDoc {
	doc := meiliProjectDoc{
		ID:           p.ID.String(),
		Name:         p.Name,
		Technologies: make([]string, 0, len(p.Technologies)),
		SubProjects:  make([]string, 0, len(p.SubProjects)),
		IsCurrent:    p.IsCurrent,
	}
	if p.Description != nil {
		doc.Description = s.cleanContentForIndex(*p.Description)
	}
	if p.Framework != nil {
		doc.Framework = *p.Framework
	}
	if p.StartDate != nil {
		doc.StartDate = p.StartDate.Unix()
	}
	for _, t := range p.Technologies {
		doc.Technologies = append(doc.Technologies, t.Name)
	}
	for _, sp := range p.SubProjects {
		doc.SubProjects = append(doc.SubProjects, sp.Name)
	}
	return doc
}

func (s *projectSearchService) IndexProjects(ctx context.Context, projects []entity.Project) error {
	if s.index == nil || len(projects) == 0 {
		return nil
	}

	docs := make([]meiliProjectDoc, 0, len(projects))
	for _, p := range projects {
		docs = append(docs, s.toDocument(p))
	}

	task, err := s.index.AddDocuments(docs, strPtr("id"))
	if err != nil {
		return fmt.Errorf("index projects: %w", err)
	}
	s.log.Debug("projects queued for indexing", zap.Int("count", len(docs)), zap.Int64("task_uid", task.TaskUID))
	return nil
}

func (s *projectSearchService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if s.index == nil {
		return nil
	}
	if _, err := s.index.DeleteDocument(id.String()); err != nil {
		return fmt.Errorf("delete project %s from index: %w", id, err)
	}
	return nil
}

// Reindex pushes every project to the index and returns how many were sent.
func (s *projectSearchService) Reindex(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, apperror.New(http.StatusServiceUnavailable, "search is not configured", apperror.ErrUnavailable)
	}

	projects, err := s.source.FindProjects(ctx)
	if err != nil {
		return 0, fmt.Errorf("load projects for reindex: %w", err)
	}
	if err := s.IndexProjects(ctx, projects); err != nil {
		return 0, err
	}

	s.log.Info("project index rebuilt", zap.Int("projects", len(projects)))
	return len(projects), nil
}

type rawSearchResult struct {
	Hits               []meiliProjectDoc `json:"hits"`
	EstimatedTotalHits int64             `json:"estimatedTotalHits"`
}

func (s *projectSearchService) SearchProjects(ctx context.Context, query string, limit int) (*dto.SearchProjectsResponse, error) {
	if s.index == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "search is not configured", apperror.ErrUnavailable)
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	raw, err := s.index.SearchRaw(query, &meilisearch.SearchRequest{Limit: int64(limit)})
	if err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}

	var result rawSearchResult
	if raw != nil {
		if err := json.Unmarshal(*raw, &result); err != nil {
			return nil, fmt.Errorf("decode search result: %w", err)
		}
	}

	hits := make([]dto.ProjectHit, 0, len(result.Hits))
	for _, h := range result.Hits {
		hits = append(hits, dto.ProjectHit{
			ID:           h.ID,
			Name:         h.Name,
			Description:  h.Description,
			Framework:    h.Framework,
			Technologies: h.Technologies,
			IsCurrent:    h.IsCurrent,
		})
	}

	return &dto.SearchProjectsResponse{
		Query:              query,
		Hits:               hits,
		EstimatedTotalHits: result.EstimatedTotalHits,
	}, nil
}

func strPtr(s string) *string {
	return &s
}
