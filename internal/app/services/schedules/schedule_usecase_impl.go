package schedules

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/models"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/dto/requests"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/dto/responses"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/exceptions"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/timetable"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/utils"
)

type scheduleUsecase struct {
	UpstreamClient  ScheduleUpstreamClient
	CacheRepository ScheduleCacheRepository
	Parser          *timetable.Parser
	Log             *zap.Logger
	now             func() time.Time
	flight          singleflight.Group
}

func NewScheduleUsecase(
	upstreamClient ScheduleUpstreamClient,
	cacheRepository ScheduleCacheRepository,
	parser *timetable.Parser,
	log *zap.Logger,
) ScheduleUsecase {
	return &scheduleUsecase{
		UpstreamClient:  upstreamClient,
		CacheRepository: cacheRepository,
		Parser:          parser,
		Log:             log,
		now:             time.Now,
	}
}

// GetSchedule coalesces concurrent requests per group so that at most one
// upstream fetch is in flight for a group at any time. An empty session
// selects the regular timetable.
func (uc *scheduleUsecase) GetSchedule(ctx context.Context, group, session string) (*responses.ScheduleFetchResult, error) {
	if session == "" {
		session = constvars.DefaultSession
	}
	result, err, _ := uc.flight.Do(group, func() (interface{}, error) {
		return uc.fetchWithFallback(ctx, group, session)
	})
	if err != nil {
		return nil, err
	}
	return result.(*responses.ScheduleFetchResult), nil
}

func (uc *scheduleUsecase) fetchWithFallback(ctx context.Context, group, session string) (*responses.ScheduleFetchResult, error) {
	data, err := uc.UpstreamClient.FetchSchedule(ctx, group, session)
	if err == nil {
		entry := &models.ScheduleCacheEntry{
			Data:     data,
			CachedAt: uc.now().UnixMilli(),
		}
		// Persist failures must never block a successful fetch result.
		if storeErr := uc.CacheRepository.SetEntry(ctx, group, entry); storeErr != nil {
			uc.Log.Warn("failed to persist schedule cache entry",
				zap.String(constvars.LoggingGroupKey, group),
				zap.Error(storeErr),
			)
		}
		return &responses.ScheduleFetchResult{Data: data, Stale: false}, nil
	}

	entry, cacheErr := uc.CacheRepository.GetEntry(ctx, group)
	if cacheErr != nil {
		uc.Log.Warn("failed to read schedule cache entry",
			zap.String(constvars.LoggingGroupKey, group),
			zap.Error(cacheErr),
		)
	}
	if entry != nil && entry.Data != nil {
		uc.Log.Info("serving schedule from cache after upstream failure",
			zap.String(constvars.LoggingGroupKey, group),
			zap.Int64(constvars.LoggingCachedAtKey, entry.CachedAt),
			zap.Error(err),
		)
		cachedAt := entry.CachedAt
		return &responses.ScheduleFetchResult{Data: entry.Data, Stale: true, CachedAt: &cachedAt}, nil
	}

	return nil, exceptions.ErrScheduleCacheMiss(err)
}

func (uc *scheduleUsecase) GetLessons(ctx context.Context, request *requests.GetLessons) (*responses.ScheduleLessons, error) {
	result, err := uc.GetSchedule(ctx, request.Group, request.Session)
	if err != nil {
		return nil, err
	}

	filterDate := ""
	if !request.AllDates {
		filterDate = request.Date
		if filterDate == "" {
			filterDate = utils.FormatISODate(uc.now())
		}
	}

	lessons := uc.Parser.ParseGrid(result.Data.Grid, filterDate)

	format := timetable.Format(request.Format)
	if format == "" {
		format = timetable.FormatAll
	}
	lessons = timetable.Filter(lessons, timetable.FilterOptions{
		Types:  request.Types,
		Format: format,
	})

	return &responses.ScheduleLessons{
		Group:    result.Data.Group,
		Lessons:  lessons,
		Stale:    result.Stale,
		CachedAt: result.CachedAt,
	}, nil
}

func (uc *scheduleUsecase) GetFilters(ctx context.Context, group, session string) (*responses.ScheduleFilters, error) {
	result, err := uc.GetSchedule(ctx, group, session)
	if err != nil {
		return nil, err
	}

	lessons := uc.Parser.ParseGrid(result.Data.Grid, "")

	return &responses.ScheduleFilters{
		Subjects: timetable.UniqueSubjects(lessons),
		Teachers: timetable.UniqueTeachers(lessons),
		Types:    timetable.UniqueTypes(lessons),
	}, nil
}
