package ports

import (
	"context"

	"github.com/careermap/careermap-api/internal/core/domain"
)

// ActivityRecorder accepts activity events for asynchronous persistence.
// Recording is fire-and-forget; a dropped event never fails a request.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityRepository defines persistence for the admin activity feed.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}

// ActivityService persists dispatched activity events and serves the feed.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
	Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}
