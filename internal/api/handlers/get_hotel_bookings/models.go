package get_hotel_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

// parseQuery собирает модель запроса сервиса из query параметров
func parseQuery(hotelID int64, query url.Values) (*models.GetHotelBookingsRequest, error) {
	req := &models.GetHotelBookingsRequest{
		HotelID:         hotelID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if raw := query.Get("roomInstanceId"); raw != "" {
		roomInstanceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomInstanceID = &roomInstanceID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
