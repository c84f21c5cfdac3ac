package checkout_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arnakr/AeroPark-Service/internal/api/handlers"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings"
	"github.com/arnakr/AeroPark-Service/pkg/refcode"
)

const (
	msgInvalidReference  = "invalid booking reference"
	msgNotFound          = "booking not found"
	msgIllegalTransition = "booking cannot be checked out from its current status"
	msgAddonsIncomplete  = "booking has add-on services that are not finished"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{reference}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if !refcode.Valid(reference) {
		h.logger.Warn("PATCH /bookings/{reference}/checkout - Invalid reference: %q", reference)
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}

	err := h.service.CheckOut(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{reference}/checkout - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAddonsIncomplete):
			h.logger.Warn("PATCH /bookings/{reference}/checkout - Open add-ons: reference=%s", reference)
			handlers.RespondConflict(w, msgAddonsIncomplete)

		case errors.Is(err, bookings.ErrIllegalTransition):
			h.logger.Warn("PATCH /bookings/{reference}/checkout - Illegal transition: reference=%s", reference)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /bookings/{reference}/checkout - Failed: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{reference}/checkout - Booking checked out: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
