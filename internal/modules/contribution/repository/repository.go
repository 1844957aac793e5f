package repository

import (
	"context"

	"anoa.com/lebenslauf/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContributionRepository interface {
	// UpsertContributions writes one row per day, replacing the count of days already stored.
	UpsertContributions(ctx context.Context, rows []entity.GitHubContribution) (int64, error)
}

type contributionRepository struct {
	db *gorm.DB
}

func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

func (r *contributionRepository) UpsertContributions(ctx context.Context, rows []entity.GitHubContribution) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"count", "week_number", "day_of_week"}),
	}).CreateInBatches(&rows, 100)
	return res.RowsAffected, res.Error
}
