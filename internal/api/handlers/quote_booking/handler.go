package quote_booking

import (
	"errors"
	"net/http"

	"github.com/arnakr/AeroPark-Service/internal/api/handlers"
	quoteBooking "github.com/arnakr/AeroPark-Service/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgLotNotFound        = "parking lot not found"
	msgServiceNotFound    = "add-on service not found"
	msgServiceNotForSize  = "add-on service is not offered for this vehicle size"
	msgSizeNotSupported   = "vehicle size class is not supported at this lot"
	msgInvalidDateRange   = "pick-up time must be after drop-off time"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Handle(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrLotNotFound):
			h.logger.Warn("POST /bookings/quote - Lot not found: lot_id=%d", req.LotID)
			handlers.RespondNotFound(w, msgLotNotFound)

		case errors.Is(err, quoteBooking.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, quoteBooking.ErrServiceNotForSize):
			handlers.RespondBadRequest(w, msgServiceNotForSize)

		case errors.Is(err, quoteBooking.ErrSizeNotSupported):
			handlers.RespondBadRequest(w, msgSizeNotSupported)

		case errors.Is(err, quoteBooking.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/quote - Failed to quote: lot_id=%d, error=%v", req.LotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/quote - Quote computed: lot_id=%d, total=%d", req.LotID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
