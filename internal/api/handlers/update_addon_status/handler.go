package update_addon_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arnakr/AeroPark-Service/internal/api/handlers"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings"
	"github.com/arnakr/AeroPark-Service/pkg/refcode"
)

const (
	msgInvalidReference   = "invalid booking reference"
	msgInvalidAddonID     = "invalid add-on ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStatus      = "unknown add-on status"
	msgBookingNotFound    = "booking not found"
	msgAddonNotFound      = "add-on not found on this booking"
	msgTerminalBooking    = "booking is already in a final state"
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

// Handle PATCH /api/v1/bookings/{reference}/addons/{addonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reference := vars["reference"]
	if !refcode.Valid(reference) {
		h.logger.Warn("PATCH /bookings/{reference}/addons/{addonId} - Invalid reference: %q", reference)
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}

	addonID, err := strconv.ParseInt(vars["addonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{reference}/addons/{addonId} - Invalid addon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAddonID)
		return
	}

	var req UpdateAddonStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{reference}/addons/{addonId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateAddonStatus(r.Context(), reference, addonID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{reference}/addons/{addonId} - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAddonNotFound):
			h.logger.Warn("PATCH /bookings/{reference}/addons/{addonId} - Addon not found: reference=%s, addon_id=%d",
				reference, addonID)
			handlers.RespondNotFound(w, msgAddonNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{reference}/addons/{addonId} - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrTerminalBooking):
			h.logger.Warn("PATCH /bookings/{reference}/addons/{addonId} - Terminal booking: reference=%s", reference)
			handlers.RespondConflict(w, msgTerminalBooking)

		default:
			h.logger.Error("PATCH /bookings/{reference}/addons/{addonId} - Failed: reference=%s, addon_id=%d, error=%v",
				reference, addonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{reference}/addons/{addonId} - Addon updated: reference=%s, addon_id=%d, status=%s",
		reference, addonID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
