package slots

import (
	"context"
	"time"

	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/dto/responses"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/exceptions"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/timetable"
)

const wallClockLayout = "15:04"

type slotUsecase struct {
	now func() time.Time
}

func NewSlotUsecase() SlotUsecase {
	return &slotUsecase{now: time.Now}
}

func (uc *slotUsecase) GetSlots(ctx context.Context) []timetable.TimeSlot {
	return timetable.Slots
}

func (uc *slotUsecase) GetSlotStatus(ctx context.Context, at string) (*responses.SlotStatus, error) {
	now := uc.now()

	minutes := timetable.MinutesOfDay(now)
	if at != "" {
		parsed, err := time.Parse(wallClockLayout, at)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		minutes = timetable.MinutesOfDay(parsed)
	}

	status := timetable.SlotStatusAt(minutes)

	return &responses.SlotStatus{
		CurrentSlot:      status.CurrentSlot,
		NextSlot:         status.NextSlot,
		MinutesUntilNext: status.MinutesUntilNext,
		Day:              timetable.ModelDayNumber(now.Weekday()),
	}, nil
}
