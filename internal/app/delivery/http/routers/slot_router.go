package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/services/slots"
)

func attachSlotRoutes(r chi.Router, slotController *slots.SlotController) {
	r.Get("/", slotController.GetSlots)
	r.Get("/status", slotController.GetSlotStatus)
}
