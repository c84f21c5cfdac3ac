package get_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arnakr/AeroPark-Service/internal/api/handlers"
	getOccupancy "github.com/arnakr/AeroPark-Service/internal/usecase/get_occupancy"
)

const (
	msgInvalidLotID = "invalid lot ID"
	msgLotNotFound  = "parking lot not found"
)

type Handler struct {
	useCase GetOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/lots/{lotId}/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lotID, err := strconv.ParseInt(mux.Vars(r)["lotId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /lots/{lotId}/occupancy - Invalid lot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLotID)
		return
	}

	result, err := h.useCase.Handle(r.Context(), &getOccupancy.Request{LotID: lotID})
	if err != nil {
		switch {
		case errors.Is(err, getOccupancy.ErrLotNotFound):
			h.logger.Warn("GET /lots/{lotId}/occupancy - Lot not found: lot_id=%d", lotID)
			handlers.RespondNotFound(w, msgLotNotFound)

		case errors.Is(err, getOccupancy.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidLotID)

		default:
			h.logger.Error("GET /lots/{lotId}/occupancy - Failed: lot_id=%d, error=%v", lotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /lots/{lotId}/occupancy - Forecast computed: lot_id=%d, days=%d", lotID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
