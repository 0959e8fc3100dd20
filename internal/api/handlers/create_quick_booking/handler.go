package create_quick_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	createQuickBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_quick_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "номер не найден"
	msgInvalidDateRange   = "некорректный диапазон дат проживания"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgRoomNotAvailable   = "номер недоступен на выбранные даты"
	msgConcurrentConflict = "конфликт одновременного бронирования, повторите запрос"
)

type Handler struct {
	useCase CreateQuickBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateQuickBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar/bookings/quick
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuickBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/bookings/quick - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /calendar/bookings/quick - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createQuickBooking.ErrRoomInstanceNotFound):
			h.logger.Warn("POST /calendar/bookings/quick - Room instance not found: room_instance_id=%d",
				req.RoomInstanceID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createQuickBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /calendar/bookings/quick - Invalid date range: check_in=%s, check_out=%s",
				req.CheckInDate, req.CheckOutDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createQuickBooking.ErrInvalidInput):
			h.logger.Warn("POST /calendar/bookings/quick - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createQuickBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /calendar/bookings/quick - Room not available: room_instance_id=%d",
				req.RoomInstanceID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createQuickBooking.ErrConflict):
			h.logger.Warn("POST /calendar/bookings/quick - Concurrent conflict: room_instance_id=%d",
				req.RoomInstanceID)
			handlers.RespondConflict(w, msgConcurrentConflict)

		default:
			h.logger.Error("POST /calendar/bookings/quick - Failed to create booking: room_instance_id=%d, error=%v",
				req.RoomInstanceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /calendar/bookings/quick - Booking created successfully: booking_id=%s, room_instance_id=%d",
		result.ID, req.RoomInstanceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
