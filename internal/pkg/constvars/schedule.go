package constvars

const (
	// ScheduleStatusOK is the upstream payload status marking a usable
	// response envelope.
	ScheduleStatusOK = "ok"

	// DefaultSession selects the regular (non-exam) timetable.
	DefaultSession = "0"

	ScheduleCacheKeyPrefix = "schedule_cache:"
)

const (
	LessonTypeLecture     = "Лекция"
	LessonTypePractice    = "Практика"
	LessonTypeLab         = "Лаб. работа"
	LessonTypePracticeEOR = "Практика эор"
)

// DefaultRemoteLocationMarker is the location value the university uses
// for remote-format lessons.
const DefaultRemoteLocationMarker = "пд"
