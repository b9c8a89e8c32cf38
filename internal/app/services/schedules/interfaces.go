package schedules

import (
	"context"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/models"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/dto/requests"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	// GetSchedule returns the freshest available schedule for the group,
	// falling back to the last persisted entry when the upstream fails.
	GetSchedule(ctx context.Context, group, session string) (*responses.ScheduleFetchResult, error)
	GetLessons(ctx context.Context, request *requests.GetLessons) (*responses.ScheduleLessons, error)
	GetFilters(ctx context.Context, group, session string) (*responses.ScheduleFilters, error)
}

// ScheduleUpstreamClient fetches the raw grid from the timetable
// upstream. Transport failures, non-success HTTP statuses and payload
// statuses other than the success marker all come back as errors.
type ScheduleUpstreamClient interface {
	FetchSchedule(ctx context.Context, group, session string) (*models.ScheduleResponse, error)
}

// ScheduleCacheRepository is the storage port for the per-group fallback
// cache: one (envelope, timestamp) entry per group, always the latest
// success. GetEntry returns (nil, nil) on a miss.
type ScheduleCacheRepository interface {
	GetEntry(ctx context.Context, group string) (*models.ScheduleCacheEntry, error)
	SetEntry(ctx context.Context, group string, entry *models.ScheduleCacheEntry) error
}
