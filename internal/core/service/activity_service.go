package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

const defaultFeedLimit = 50

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation backed by the
// given repository.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single dispatched activity event.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return err
	}

	s.log.Debug().
		Str("type", string(event.Type)).
		Str("user_id", event.UserID).
		Msg("activity recorded")

	return nil
}

// Recent returns the newest feed entries, capped at limit (default 50).
func (s *activityService) Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultFeedLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
