package responses

import (
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/models"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/timetable"
)

// ScheduleFetchResult is the envelope returned for a schedule request.
// Stale marks data served from the per-group cache after an upstream
// failure; CachedAt then carries the millisecond epoch timestamp of the
// original successful fetch.
type ScheduleFetchResult struct {
	Data     *models.ScheduleResponse `json:"data"`
	Stale    bool                     `json:"stale"`
	CachedAt *int64                   `json:"cachedAt,omitempty"`
}

// ScheduleLessons carries the normalized and filtered lesson sequence
// together with the staleness indicator of the underlying fetch.
type ScheduleLessons struct {
	Group    models.GroupInfo   `json:"group"`
	Lessons  []timetable.Lesson `json:"lessons"`
	Stale    bool               `json:"stale"`
	CachedAt *int64             `json:"cachedAt,omitempty"`
}

// ScheduleFilters lists the distinct values available for filtering a
// group's schedule.
type ScheduleFilters struct {
	Subjects []string `json:"subjects"`
	Teachers []string `json:"teachers"`
	Types    []string `json:"types"`
}

// SlotStatus is the slot clock resolution plus today's model day number
// (week starting at Monday = 1).
type SlotStatus struct {
	CurrentSlot      *int `json:"currentSlot"`
	NextSlot         *int `json:"nextSlot"`
	MinutesUntilNext *int `json:"minutesUntilNext"`
	Day              int  `json:"day"`
}
