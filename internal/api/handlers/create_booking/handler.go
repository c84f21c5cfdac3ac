package create_booking

import (
	"errors"
	"net/http"

	"github.com/arnakr/AeroPark-Service/internal/api/handlers"
	"github.com/arnakr/AeroPark-Service/internal/api/middleware"
	createBooking "github.com/arnakr/AeroPark-Service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgLotNotFound          = "parking lot not found"
	msgServiceNotFound      = "add-on service not found"
	msgServiceNotForSize    = "add-on service is not offered for this vehicle size"
	msgSizeNotSupported     = "vehicle size class is not supported at this lot"
	msgInvalidDateRange     = "pick-up time must be after drop-off time"
	msgDateInPast           = "drop-off date is in the past"
	msgGuestContactRequired = "guest bookings require a name and email"
	msgPaymentSession       = "booking was created but the payment session could not be opened"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Registered users book under their own identity; anonymous callers
	// book as guests with contact details in the body
	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	result, err := h.useCase.Handle(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrLotNotFound):
			h.logger.Warn("POST /bookings - Lot not found: lot_id=%d", req.LotID)
			handlers.RespondNotFound(w, msgLotNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: lot_id=%d", req.LotID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotForSize):
			h.logger.Warn("POST /bookings - Service not for size: lot_id=%d, size=%s", req.LotID, req.SizeClass)
			handlers.RespondBadRequest(w, msgServiceNotForSize)

		case errors.Is(err, createBooking.ErrSizeNotSupported):
			h.logger.Warn("POST /bookings - Size not supported: lot_id=%d, size=%s", req.LotID, req.SizeClass)
			handlers.RespondBadRequest(w, msgSizeNotSupported)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: lot_id=%d", req.LotID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Drop-off in the past: lot_id=%d", req.LotID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrGuestContactRequired):
			h.logger.Warn("POST /bookings - Guest contact missing: lot_id=%d", req.LotID)
			handlers.RespondBadRequest(w, msgGuestContactRequired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrPaymentSession):
			// The booking row exists; the client should retry payment
			h.logger.Error("POST /bookings - Payment session failed: lot_id=%d", req.LotID)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentSession)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: lot_id=%d, error=%v", req.LotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, reference=%s, lot_id=%d",
		result.ID, result.Reference, req.LotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
