package routers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/config"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/delivery/http/middlewares"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/services/schedules"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/services/slots"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/utils"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	scheduleController *schedules.ScheduleController,
	slotController *slots.SlotController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthySuccessMessage, nil)
	})

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/schedule", func(r chi.Router) {
				attachScheduleRoutes(r, scheduleController)
			})

			r.Route("/slots", func(r chi.Router) {
				attachSlotRoutes(r, slotController)
			})
		})
	})
}
