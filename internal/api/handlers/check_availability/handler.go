package check_availability

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
	msgInvalidRoomID    = "некорректный ID номера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "некорректный диапазон дат проживания"
	msgRoomNotFound     = "номер не найден"
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

// Handle GET /api/v1/calendar/availability
// Query параметры: roomInstanceId, checkIn, checkOut
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomInstanceID, err := strconv.ParseInt(query.Get("roomInstanceId"), 10, 64)
	if err != nil || roomInstanceID <= 0 {
		h.logger.Warn("GET /calendar/availability - Invalid room instance ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		h.logger.Warn("GET /calendar/availability - Invalid check-in date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		h.logger.Warn("GET /calendar/availability - Invalid check-out date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.IsAvailable(r.Context(), roomInstanceID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidDateRange):
			h.logger.Warn("GET /calendar/availability - Invalid date range: room_instance_id=%d", roomInstanceID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, calendar.ErrRoomInstanceNotFound):
			h.logger.Warn("GET /calendar/availability - Room not found: room_instance_id=%d", roomInstanceID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /calendar/availability - Failed to check availability: room_instance_id=%d, error=%v",
				roomInstanceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/availability - Availability checked: room_instance_id=%d, available=%t",
		roomInstanceID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
