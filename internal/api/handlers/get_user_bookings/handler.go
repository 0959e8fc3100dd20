package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgUnknownStatus = "неизвестный статус бронирования"
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

// Handle GET /api/v1/users/{userId}/bookings
// Query параметры: status - фильтр по статусу, upcoming=true - только предстоящие
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	targetUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || targetUserID <= 0 {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Историю бронирований видит только сам пользователь или администратор
	if requesterID != targetUserID && !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: target_user_id=%d, requester_id=%d",
			targetUserID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// upcoming=true возвращает только активные бронирования с датой заезда не раньше сегодня
	if r.URL.Query().Get("upcoming") == "true" {
		result, err := h.service.GetUpcomingBookings(r.Context(), targetUserID)
		if err != nil {
			h.logger.Error("GET /users/{id}/bookings - Failed to get upcoming bookings: user_id=%d, error=%v",
				targetUserID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /users/{id}/bookings - Upcoming bookings retrieved: user_id=%d, count=%d",
			targetUserID, result.Total)
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: targetUserID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnknownStatus):
			h.logger.Warn("GET /users/{id}/bookings - Unknown status filter: user_id=%d", targetUserID)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%d, error=%v",
				targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Bookings retrieved: user_id=%d, count=%d",
		targetUserID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
