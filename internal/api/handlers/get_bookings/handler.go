package get_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

const (
	msgMissingFilter = "требуется один из параметров: status, checkInDate, checkOutDate"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/bookings
// Административная выборка: ровно один из query параметров
// status, checkInDate, checkOutDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		result *models.BookingListResponse
		err    error
	)

	switch {
	case query.Get("status") != "":
		result, err = h.service.GetByStatus(r.Context(), query.Get("status"))

	case query.Get("checkInDate") != "":
		var date time.Time
		date, err = time.Parse(domain.DateFormat, query.Get("checkInDate"))
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid checkInDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.GetByCheckInDate(r.Context(), date)

	case query.Get("checkOutDate") != "":
		var date time.Time
		date, err = time.Parse(domain.DateFormat, query.Get("checkOutDate"))
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid checkOutDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.GetByCheckOutDate(r.Context(), date)

	default:
		handlers.RespondBadRequest(w, msgMissingFilter)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnknownStatus):
			h.logger.Warn("GET /bookings - Unknown status filter: %s", query.Get("status"))
			handlers.RespondBadRequest(w, msgUnknownStatus)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
