package get_hotel_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
)

const (
	msgInvalidHotelID     = "некорректный ID отеля"
	msgInvalidQueryParams = "некорректные параметры фильтрации"
	msgUnknownStatus      = "неизвестный статус бронирования"
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

// Handle GET /api/v1/hotels/{hotelId}/bookings
// Query параметры: roomInstanceId, startDate, endDate, status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil || hotelID <= 0 {
		h.logger.Warn("GET /hotels/{id}/bookings - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	req, err := parseQuery(hotelID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/bookings - Invalid query params: hotel_id=%d, error=%v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.service.GetHotelBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnknownStatus):
			h.logger.Warn("GET /hotels/{id}/bookings - Unknown status filter: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		default:
			h.logger.Error("GET /hotels/{id}/bookings - Failed to get bookings: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/bookings - Bookings retrieved: hotel_id=%d, count=%d",
		hotelID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
