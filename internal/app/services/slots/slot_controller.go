package slots

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/dto/requests"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/exceptions"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/utils"
)

type SlotController struct {
	SlotUsecase SlotUsecase
	Log         *zap.Logger
}

func NewSlotController(slotUsecase SlotUsecase, log *zap.Logger) *SlotController {
	return &SlotController{
		SlotUsecase: slotUsecase,
		Log:         log,
	}
}

func (ctrl *SlotController) GetSlots(w http.ResponseWriter, r *http.Request) {
	result := ctrl.SlotUsecase.GetSlots(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccessMessage, result)
}

func (ctrl *SlotController) GetSlotStatus(w http.ResponseWriter, r *http.Request) {
	request := &requests.GetSlotStatus{
		At: r.URL.Query().Get("at"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.SlotUsecase.GetSlotStatus(r.Context(), request.At)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotStatusSuccessMessage, result)
}
