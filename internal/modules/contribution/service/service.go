package service

import (
	"context"
	"sort"

	"anoa.com/lebenslauf/internal/entity"
	"anoa.com/lebenslauf/internal/modules/contribution/repository"
	"go.uber.org/zap"
)

type CalendarFetcher interface {
	FetchCalendar(ctx context.Context, username string) ([]Day, error)
}

type ContributionService interface {
	// Sync copies the public calendar of the configured user into the
	// contribution table and returns the number of days written.
	Sync(ctx context.Context) (int, error)
}

type contributionService struct {
	repo     repository.ContributionRepository
	fetcher  CalendarFetcher
	username string
	log      *zap.Logger
}

func NewContributionService(repo repository.ContributionRepository, fetcher CalendarFetcher, username string, log *zap.Logger) ContributionService {
	return &contributionService{
		repo:     repo,
		fetcher:  fetcher,
		username: username,
		log:      log,
	}
}

func (s *contributionService) Sync(ctx context.Context) (int, error) {
	days, err := s.fetcher.FetchCalendar(ctx, s.username)
	if err != nil {
		return 0, err
	}

	rows := ToContributions(days)
	if _, err := s.repo.UpsertContributions(ctx, rows); err != nil {
		return 0, err
	}

	total := 0
	for _, r := range rows {
		total += r.Count
	}
	s.log.Info("github contributions synced",
		zap.String("username", s.username),
		zap.Int("days", len(rows)),
		zap.Int("total", total))
	return len(rows), nil
}

// ToContributions orders days by date and fills in the ISO week and weekday.
// A date listed twice keeps its last count.
func ToContributions(days []Day) []entity.GitHubContribution {
	byDate := make(map[string]Day, len(days))
	for _, d := range days {
		byDate[d.Date.Format("2006-01-02")] = d
	}

	rows := make([]entity.GitHubContribution, 0, len(byDate))
	for _, d := range byDate {
		_, week := d.Date.ISOWeek()
		rows = append(rows, entity.GitHubContribution{
			Date:       d.Date,
			Count:      d.Count,
			WeekNumber: week,
			DayOfWeek:  int(d.Date.Weekday()),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}
