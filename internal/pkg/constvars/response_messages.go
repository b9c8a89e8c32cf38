package constvars

const (
	ResponseUnknown = "unknown"

	GetScheduleSuccessMessage   = "get schedule successfully"
	GetLessonsSuccessMessage    = "get lessons successfully"
	GetFiltersSuccessMessage    = "get filter values successfully"
	GetSlotsSuccessMessage      = "get time slots successfully"
	GetSlotStatusSuccessMessage = "get slot status successfully"
	HealthySuccessMessage       = "healthy"
)
