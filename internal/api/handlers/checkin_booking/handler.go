package checkin_booking

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
	msgIllegalTransition = "booking cannot be checked in from its current status"
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

// Handle PATCH /api/v1/bookings/{reference}/checkin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if !refcode.Valid(reference) {
		h.logger.Warn("PATCH /bookings/{reference}/checkin - Invalid reference: %q", reference)
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}

	err := h.service.CheckIn(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{reference}/checkin - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrIllegalTransition):
			h.logger.Warn("PATCH /bookings/{reference}/checkin - Illegal transition: reference=%s", reference)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /bookings/{reference}/checkin - Failed: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{reference}/checkin - Booking checked in: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
