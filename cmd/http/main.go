package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/config"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/delivery/http/middlewares"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/delivery/http/routers"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/drivers/database"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/drivers/logger"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/services/schedules"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/services/slots"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/timetable"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Sugar().Infof("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(); err != nil {
		log.Sugar().Errorf("Error while closing resources: %v", err)
	}

	log.Sugar().Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Grid parsing
	linkParser := timetable.NewAnchorLinkParser()
	parser := timetable.NewParser(linkParser, bootstrap.InternalConfig.Schedule.RemoteLocationMarker)

	// Schedule
	scheduleUpstreamClient := schedules.NewScheduleUpstreamClient(bootstrap.InternalConfig.Schedule)
	scheduleCacheRepository := schedules.NewScheduleRedisRepository(bootstrap.Redis)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleUpstreamClient, scheduleCacheRepository, parser, bootstrap.Logger)
	scheduleController := schedules.NewScheduleController(scheduleUsecase, bootstrap.Logger)

	// Slots
	slotUsecase := slots.NewSlotUsecase()
	slotController := slots.NewSlotController(slotUsecase, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, scheduleController, slotController)
}
