package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgHotelNotFound      = "отель не найден"
	msgRoomTypeNotFound   = "категория номеров не найдена"
	msgInvalidDateRange   = "некорректный диапазон дат проживания"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgInsufficientRooms  = "недостаточно свободных номеров на выбранные даты"
	msgConcurrentConflict = "конфликт одновременного бронирования, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrHotelNotFound):
			h.logger.Warn("POST /bookings - Hotel not found: hotel_id=%d", req.HotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, createBooking.ErrRoomTypeNotFound):
			h.logger.Warn("POST /bookings - Room type not found: hotel_id=%d, room_type_id=%d",
				req.HotelID, req.RoomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%d, check_in=%s, check_out=%s",
				userID, req.CheckInDate, req.CheckOutDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInsufficientRooms):
			h.logger.Warn("POST /bookings - Insufficient rooms: hotel_id=%d, room_type_id=%d, rooms=%d",
				req.HotelID, req.RoomTypeID, req.NumberOfRooms)
			handlers.RespondConflict(w, msgInsufficientRooms)

		case errors.Is(err, createBooking.ErrConflict):
			h.logger.Warn("POST /bookings - Concurrent conflict: user_id=%d, room_type_id=%d",
				userID, req.RoomTypeID)
			handlers.RespondConflict(w, msgConcurrentConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, hotel_id=%d, error=%v",
				userID, req.HotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%d, hotel_id=%d",
		result.ID, userID, req.HotelID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
