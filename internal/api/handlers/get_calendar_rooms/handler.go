package get_calendar_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/calendar"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgHotelNotFound  = "отель не найден"
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

// Handle GET /api/v1/calendar/rooms
// Query параметры: hotelId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := strconv.ParseInt(r.URL.Query().Get("hotelId"), 10, 64)
	if err != nil || hotelID <= 0 {
		h.logger.Warn("GET /calendar/rooms - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	result, err := h.service.GetRoomInstances(r.Context(), hotelID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrHotelNotFound):
			h.logger.Warn("GET /calendar/rooms - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("GET /calendar/rooms - Failed to get rooms: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/rooms - Rooms retrieved: hotel_id=%d, count=%d", hotelID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
