package get_lot_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/arnakr/AeroPark-Service/internal/api/handlers"
	"github.com/arnakr/AeroPark-Service/internal/domain"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings/models"
)

const (
	msgInvalidLotID  = "invalid lot ID"
	msgInvalidDate   = "invalid date filter, expected YYYY-MM-DD"
	msgInvalidFilter = "invalid booking filter"
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

// Handle GET /api/v1/lots/{lotId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lotID, err := strconv.ParseInt(mux.Vars(r)["lotId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /lots/{lotId}/bookings - Invalid lot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLotID)
		return
	}

	req := &models.GetLotBookingsRequest{LotID: lotID}

	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		t, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &t
	}
	if to := query.Get("to"); to != "" {
		t, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &t
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetLotBookings(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /lots/{lotId}/bookings - Invalid filter: lot_id=%d", lotID)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /lots/{lotId}/bookings - Failed: lot_id=%d, error=%v", lotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lots/{lotId}/bookings - Bookings retrieved: lot_id=%d, count=%d",
		lotID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
