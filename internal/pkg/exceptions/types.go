package exceptions

import (
	"errors"
	"fmt"

	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
)

// Upstream failure taxonomy. All three variants are absorbed by the
// schedule cache fallback; they surface only through logs.
var (
	ErrUpstreamTransport = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientScheduleUnavailable, constvars.ErrDevUpstreamTransport)
	}
	ErrUpstreamStatus = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientScheduleUnavailable, fmt.Sprintf(constvars.ErrDevUpstreamStatus, statusCode))
	}
	ErrUpstreamPayloadStatus = func(payloadStatus string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientGroupNotFound, fmt.Sprintf(constvars.ErrDevUpstreamPayloadStatus, payloadStatus, constvars.ScheduleStatusOK))
	}
	ErrDecodeUpstreamResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientScheduleUnavailable, constvars.ErrDevDecodeUpstreamResponse)
	}

	// ErrScheduleCacheMiss is the only upstream-related failure that
	// reaches the client: the fetch failed and no prior entry exists for
	// the group.
	ErrScheduleCacheMiss = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientScheduleUnavailable, constvars.ErrDevScheduleCacheMiss)
	}
)

// IsScheduleCacheMiss reports whether err is the cache-miss failure.
func IsScheduleCacheMiss(err error) bool {
	var customErr *CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	return customErr.StatusCode == constvars.StatusServiceUnavailable
}
