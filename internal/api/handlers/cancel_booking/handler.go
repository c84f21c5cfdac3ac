package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arnakr/AeroPark-Service/internal/api/handlers"
	"github.com/arnakr/AeroPark-Service/internal/api/middleware"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings"
	"github.com/arnakr/AeroPark-Service/pkg/refcode"
)

const (
	msgInvalidReference   = "invalid booking reference"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgForbidden          = "access denied"
	msgCannotCancel       = "booking can no longer be cancelled"
	msgReasonTooLong      = "cancellation reason is too long"
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

// Handle PATCH /api/v1/bookings/{reference}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if !refcode.Valid(reference) {
		h.logger.Warn("PATCH /bookings/{reference}/cancel - Invalid reference: %q", reference)
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{reference}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := bookings.Actor{Operator: middleware.IsOperator(r.Context())}
	if id, ok := middleware.GetUserID(r.Context()); ok {
		actor.UserID = id
	}

	err := h.service.Cancel(r.Context(), reference, actor, req.ToServiceRequest(actor.UserID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Access denied: reference=%s, user_id=%d",
				reference, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Cannot cancel: reference=%s", reference)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgReasonTooLong)

		default:
			h.logger.Error("PATCH /bookings/{reference}/cancel - Failed: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{reference}/cancel - Booking cancelled: reference=%s, user_id=%d",
		reference, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
