package get_calendar_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/calendar"
)

const (
	msgInvalidHotelID   = "некорректный ID отеля"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "некорректный диапазон дат"
	msgHotelNotFound    = "отель не найден"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/bookings
// Query параметры: hotelId, startDate, endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	hotelID, err := strconv.ParseInt(query.Get("hotelId"), 10, 64)
	if err != nil || hotelID <= 0 {
		h.logger.Warn("GET /calendar/bookings - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /calendar/bookings - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /calendar/bookings - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetBookingsForRange(r.Context(), hotelID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidDateRange):
			h.logger.Warn("GET /calendar/bookings - Invalid date range: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, calendar.ErrHotelNotFound):
			h.logger.Warn("GET /calendar/bookings - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("GET /calendar/bookings - Failed to get bookings: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/bookings - Calendar retrieved: hotel_id=%d, count=%d",
		hotelID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
