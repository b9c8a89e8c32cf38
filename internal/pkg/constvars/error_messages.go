package constvars

// Client-facing messages are localized the way the schedule frontend
// shows them; dev messages stay English and never reach production
// clients.
const (
	ErrClientSomethingWrongWithApplication = "Что-то пошло не так, попробуйте позже"
	ErrClientCannotProcessRequest          = "Не удалось обработать запрос"
	ErrClientScheduleUnavailable           = "Расписание временно недоступно"
	ErrClientGroupNotFound                 = "Группа не найдена или сервер вернул ошибку"
	ErrClientServerLongRespond             = "Сервер отвечает слишком долго, попробуйте позже"
)

const (
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON payload"
	ErrDevCannotMarshalJSON      = "cannot marshal value to JSON"
	ErrDevCannotParseTime        = "cannot parse wall-clock time"
	ErrDevCreateHTTPRequest      = "cannot build upstream HTTP request"
	ErrDevUpstreamTransport      = "upstream transport failure"
	ErrDevUpstreamStatus         = "upstream returned non-success HTTP status %d"
	ErrDevUpstreamPayloadStatus  = "upstream payload status is %q, not %q"
	ErrDevDecodeUpstreamResponse = "cannot decode upstream response envelope"
	ErrDevScheduleCacheMiss      = "no cached schedule for group after upstream failure"
	ErrDevRedisSet               = "failed to write key to redis"
	ErrDevRedisGet               = "failed to read key %q from redis"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
)
