package create_quick_booking

import (
	"context"

	createQuickBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_quick_booking"
)

type CreateQuickBookingUseCase interface {
	Execute(ctx context.Context, req *createQuickBooking.Request) (*createQuickBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
