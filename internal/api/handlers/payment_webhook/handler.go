package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/arnakr/AeroPark-Service/internal/api/handlers"
	"github.com/arnakr/AeroPark-Service/internal/integrations/payments"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid webhook payload"
	msgConflict           = "booking cannot be confirmed"
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

// Handle POST /api/v1/webhooks/payment
//
// The provider retries on any non-2xx status, so every outcome that cannot
// improve with a retry answers 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var event payments.WebhookEvent
	if err := handlers.DecodeJSON(r, &event); err != nil {
		h.logger.Warn("POST /webhooks/payment - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !event.Paid() {
		// The booking stays pending; the customer can open a new session
		h.logger.Info("POST /webhooks/payment - Payment failed: reference=%s, session=%s",
			event.Reference, event.SessionID)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	err := h.service.Confirm(r.Context(), event.Reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			// The reference will never turn up; a 4xx would only keep the
			// provider retrying
			h.logger.Warn("POST /webhooks/payment - Unknown booking: reference=%s", event.Reference)
			handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ignored": true})

		case errors.Is(err, bookings.ErrCannotCancel), errors.Is(err, bookings.ErrIllegalTransition):
			// Paid a cancelled or no-show booking; retrying cannot help
			h.logger.Warn("POST /webhooks/payment - Cannot confirm: reference=%s, error=%v", event.Reference, err)
			handlers.RespondJSON(w, http.StatusOK, map[string]string{"result": msgConflict})

		default:
			h.logger.Error("POST /webhooks/payment - Failed: reference=%s, error=%v", event.Reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/payment - Booking confirmed: reference=%s", event.Reference)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
