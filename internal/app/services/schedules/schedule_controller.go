package schedules

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/dto/requests"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/exceptions"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/utils"
)

const controllerTimeout = 10 * time.Second

type ScheduleController struct {
	ScheduleUsecase ScheduleUsecase
	Log             *zap.Logger
}

func NewScheduleController(scheduleUsecase ScheduleUsecase, log *zap.Logger) *ScheduleController {
	return &ScheduleController{
		ScheduleUsecase: scheduleUsecase,
		Log:             log,
	}
}

func (ctrl *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	request := &requests.GetSchedule{
		Group:   r.URL.Query().Get("group"),
		Session: r.URL.Query().Get("session"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetSchedule(ctx, request.Group, request.Session)
	if err != nil {
		if err == context.DeadlineExceeded {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Fresh responses may be edge-cached briefly; stale fallbacks only
	// cover upstream errors.
	if result.Stale {
		w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlStaleError)
	} else {
		w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlFresh)
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, result)
}

func (ctrl *ScheduleController) GetLessons(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	request := &requests.GetLessons{
		Group:   query.Get("group"),
		Session: query.Get("session"),
		Date:    query.Get("date"),
		Format:  query.Get("format"),
	}
	if rawTypes := query.Get("types"); rawTypes != "" {
		for _, lessonType := range strings.Split(rawTypes, ",") {
			if lessonType = strings.TrimSpace(lessonType); lessonType != "" {
				request.Types = append(request.Types, lessonType)
			}
		}
	}
	if rawAllDates := query.Get("allDates"); rawAllDates != "" {
		allDates, err := strconv.ParseBool(rawAllDates)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
		request.AllDates = allDates
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetLessons(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLessonsSuccessMessage, result)
}

func (ctrl *ScheduleController) GetFilters(w http.ResponseWriter, r *http.Request) {
	request := &requests.GetSchedule{
		Group:   r.URL.Query().Get("group"),
		Session: r.URL.Query().Get("session"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetFilters(ctx, request.Group, request.Session)
	if err != nil {
		if err == context.DeadlineExceeded {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFiltersSuccessMessage, result)
}
