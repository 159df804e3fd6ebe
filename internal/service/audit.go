package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/threadline/ratio-service/internal/domain/model"
	"github.com/threadline/ratio-service/internal/repository"
)

// EditLogService records and lists the packing-rule edit trail.
type EditLogService interface {
	// Record stores one edit entry. It is best effort: failures are
	// logged and never surfaced to the editing flow.
	Record(ctx context.Context, entry *model.EditLog)
	// List returns the most recent entries, newest first. Empty scope
	// or garment match everything.
	List(ctx context.Context, scope, garment string, limit int64) ([]model.EditLog, error)
}

// EditLogServiceImpl implements EditLogService over the edit-log
// repository.
type EditLogServiceImpl struct {
	repo repository.EditLogs
}

// NewEditLogService creates the edit-trail service.
func NewEditLogService(repo repository.EditLogs) *EditLogServiceImpl {
	return &EditLogServiceImpl{repo: repo}
}

func (s *EditLogServiceImpl) Record(ctx context.Context, entry *model.EditLog) {
	if s.repo == nil || entry == nil {
		return
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("scope", entry.Scope).
			Str("garment", entry.Garment).
			Msg("failed to record edit log entry")
	}
}

func (s *EditLogServiceImpl) List(ctx context.Context, scope, garment string, limit int64) ([]model.EditLog, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.List(ctx, scope, garment, limit)
}
