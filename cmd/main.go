package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_availability"
	checkInBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_in_booking"
	checkOutBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_out_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_booking"
	createQuickBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_quick_booking"
	getBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_bookings"
	getCalendarBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_calendar_bookings"
	getCalendarRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_calendar_rooms"
	getHotelBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_hotel_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_booking_status"
	updateRoomStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_room_status"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	guestServiceClient "github.com/m04kA/SMC-HotelService/internal/integrations/guestservice"
	bookingsService "github.com/m04kA/SMC-HotelService/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-HotelService/internal/service/calendar"
	createBookingUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	createQuickBookingUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_quick_booking"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-HotelService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент сервиса профилей гостей
	guestClient := guestServiceClient.NewClient(
		cfg.GuestService.URL,
		time.Duration(cfg.GuestService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (GuestService=%s timeout=%ds)",
		cfg.GuestService.URL, cfg.GuestService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, metricsCollector)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		roomRepository,
		txMgr,
		metricsCollector,
		log,
	)
	calendarSvc := calendarService.NewService(
		bookingRepository,
		roomRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		guestClient,
		txMgr,
		metricsCollector,
		log,
	)
	createQuickBookingUseCase := createQuickBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createQuickBooking := createQuickBookingHandler.NewHandler(createQuickBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	checkInBooking := checkInBookingHandler.NewHandler(bookingSvc, log)
	checkOutBooking := checkOutBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getHotelBookings := getHotelBookingsHandler.NewHandler(bookingSvc, log)
	getCalendarBookings := getCalendarBookingsHandler.NewHandler(calendarSvc, log)
	getCalendarRooms := getCalendarRoomsHandler.NewHandler(calendarSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(calendarSvc, log)
	updateRoomStatus := updateRoomStatusHandler.NewHandler(calendarSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности номера на даты
	api.HandleFunc("/calendar/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования категории номеров
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Заселение и выселение
	protected.HandleFunc("/bookings/{bookingId}/check-in", checkInBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-out", checkOutBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Административная смена статуса бронирования
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// Выборка бронирований по статусу или дате заезда/выезда
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Список бронирований отеля с фильтрацией
	admin.HandleFunc("/hotels/{hotelId}/bookings", getHotelBookings.Handle).Methods(http.MethodGet)

	// --- Календарь номеров ---
	// Быстрое бронирование конкретного номера
	admin.HandleFunc("/calendar/bookings/quick", createQuickBooking.Handle).Methods(http.MethodPost)

	// Бронирования отеля за период
	admin.HandleFunc("/calendar/bookings", getCalendarBookings.Handle).Methods(http.MethodGet)

	// Номера отеля для календарной сетки
	admin.HandleFunc("/calendar/rooms", getCalendarRooms.Handle).Methods(http.MethodGet)

	// Смена статуса номера (обслуживание, блокировка)
	admin.HandleFunc("/calendar/rooms/{roomId}/status", updateRoomStatus.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
