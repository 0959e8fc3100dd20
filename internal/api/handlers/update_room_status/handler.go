package update_room_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/calendar"
)

const (
	msgInvalidRoomID      = "некорректный ID номера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownStatus      = "неизвестный статус номера"
	msgRoomNotFound       = "номер не найден"
)

// UpdateRoomStatusRequest HTTP request model
type UpdateRoomStatusRequest struct {
	Status string `json:"status"`
}

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

// Handle PUT /api/v1/calendar/rooms/{roomId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomInstanceID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil || roomInstanceID <= 0 {
		h.logger.Warn("PUT /calendar/rooms/{id}/status - Invalid room instance ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req UpdateRoomStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar/rooms/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.UpdateRoomStatus(r.Context(), roomInstanceID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrUnknownRoomStatus):
			h.logger.Warn("PUT /calendar/rooms/{id}/status - Unknown status: room_instance_id=%d, status=%s",
				roomInstanceID, req.Status)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, calendar.ErrRoomInstanceNotFound):
			h.logger.Warn("PUT /calendar/rooms/{id}/status - Room not found: room_instance_id=%d", roomInstanceID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("PUT /calendar/rooms/{id}/status - Failed to update status: room_instance_id=%d, error=%v",
				roomInstanceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/rooms/{id}/status - Status updated: room_instance_id=%d, status=%s",
		roomInstanceID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, room)
}
