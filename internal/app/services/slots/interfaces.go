package slots

import (
	"context"

	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/dto/responses"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/timetable"
)

type SlotUsecase interface {
	GetSlots(ctx context.Context) []timetable.TimeSlot
	// GetSlotStatus resolves the clock at the given "HH:MM" wall-clock
	// time, or at the current server time when at is empty.
	GetSlotStatus(ctx context.Context, at string) (*responses.SlotStatus, error)
}
