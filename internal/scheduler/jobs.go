package scheduler

import (
	"context"

	adminDto "anoa.com/lebenslauf/internal/modules/admin/dto"
	"go.uber.org/zap"
)

const (
	PruneJobName        = "prune-overlays"
	ReindexJobName      = "reindex-projects"
	ContributionJobName = "sync-contributions"
)

type OverlayPruner interface {
	PruneOrphanedOverlays(ctx context.Context) (*adminDto.PruneResponse, error)
}

type SearchReindexer interface {
	ReindexSearch(ctx context.Context) (*adminDto.ReindexResponse, error)
}

type ContributionSyncer interface {
	Sync(ctx context.Context) (int, error)
}

// PruneJob deletes overlay rows whose base entity no longer exists.
type PruneJob struct {
	pruner   OverlayPruner
	schedule string
	log      *zap.Logger
}

func NewPruneJob(pruner OverlayPruner, schedule string, log *zap.Logger) *PruneJob {
	return &PruneJob{pruner: pruner, schedule: schedule, log: log}
}

func (j *PruneJob) Name() string     { return PruneJobName }
func (j *PruneJob) Schedule() string { return j.schedule }

func (j *PruneJob) Execute(ctx context.Context) error {
	res, err := j.pruner.PruneOrphanedOverlays(ctx)
	if err != nil {
		return err
	}
	j.log.Debug("overlay prune finished", zap.Int64("removed", res.Total()))
	return nil
}

// ReindexJob rebuilds the project search index from the database.
type ReindexJob struct {
	reindexer SearchReindexer
	schedule  string
	log       *zap.Logger
}

func NewReindexJob(reindexer SearchReindexer, schedule string, log *zap.Logger) *ReindexJob {
	return &ReindexJob{reindexer: reindexer, schedule: schedule, log: log}
}

func (j *ReindexJob) Name() string     { return ReindexJobName }
func (j *ReindexJob) Schedule() string { return j.schedule }

func (j *ReindexJob) Execute(ctx context.Context) error {
	res, err := j.reindexer.ReindexSearch(ctx)
	if err != nil {
		return err
	}
	j.log.Debug("project reindex finished", zap.Int("indexed", res.Indexed))
	return nil
}

// ContributionJob refreshes the contribution graph from GitHub.
type ContributionJob struct {
	syncer   ContributionSyncer
	schedule string
	log      *zap.Logger
}

func NewContributionJob(syncer ContributionSyncer, schedule string, log *zap.Logger) *ContributionJob {
	return &ContributionJob{syncer: syncer, schedule: schedule, log: log}
}

func (j *ContributionJob) Name() string     { return ContributionJobName }
func (j *ContributionJob) Schedule() string { return j.schedule }

func (j *ContributionJob) Execute(ctx context.Context) error {
	n, err := j.syncer.Sync(ctx)
	if err != nil {
		return err
	}
	j.log.Debug("contribution sync finished", zap.Int("days", n))
	return nil
}
