package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/services/schedules"
)

func attachScheduleRoutes(r chi.Router, scheduleController *schedules.ScheduleController) {
	r.Get("/", scheduleController.GetSchedule)
	r.Get("/lessons", scheduleController.GetLessons)
	r.Get("/filters", scheduleController.GetFilters)
}
