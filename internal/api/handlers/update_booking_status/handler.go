package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownStatus      = "неизвестный статус бронирования"
	msgNotFound           = "бронирование не найдено"
	msgTooEarly           = "дата заезда еще не наступила"
	msgAlreadyTerminal    = "бронирование уже в финальном статусе"
	msgIllegalTransition  = "переход в указанный статус не разрешен"
	msgConcurrentConflict = "конфликт одновременного изменения, повторите запрос"
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

// Handle PUT /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	if _, err := uuid.Parse(bookingID); err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), bookingID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnknownStatus):
			h.logger.Warn("PUT /bookings/{id}/status - Unknown status: booking_id=%s, status=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCheckInTooEarly):
			h.logger.Warn("PUT /bookings/{id}/status - Too early for check-in: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgTooEarly)

		case errors.Is(err, bookings.ErrBookingTerminal):
			h.logger.Warn("PUT /bookings/{id}/status - Already terminal: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgAlreadyTerminal)

		case errors.Is(err, bookings.ErrIllegalTransition):
			h.logger.Warn("PUT /bookings/{id}/status - Illegal transition: booking_id=%s, status=%s",
				bookingID, req.Status)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, bookings.ErrConflict):
			h.logger.Warn("PUT /bookings/{id}/status - Concurrent conflict: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgConcurrentConflict)

		default:
			h.logger.Error("PUT /bookings/{id}/status - Failed to update status: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/status - Status updated successfully: booking_id=%s, status=%s",
		bookingID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
