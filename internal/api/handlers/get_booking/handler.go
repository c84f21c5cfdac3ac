package get_booking

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
	msgInvalidReference = "invalid booking reference"
	msgNotFound         = "booking not found"
	msgForbidden        = "access denied"
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

// Handle GET /api/v1/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if !refcode.Valid(reference) {
		h.logger.Warn("GET /bookings/{reference} - Invalid reference: %q", reference)
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}

	actor := actorFromContext(r)

	result, err := h.service.GetByReference(r.Context(), reference, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{reference} - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{reference} - Access denied: reference=%s, user_id=%d",
				reference, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{reference} - Failed: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{reference} - Booking retrieved: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func actorFromContext(r *http.Request) bookings.Actor {
	actor := bookings.Actor{Operator: middleware.IsOperator(r.Context())}
	if id, ok := middleware.GetUserID(r.Context()); ok {
		actor.UserID = id
	}
	return actor
}
