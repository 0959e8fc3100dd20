package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Repository репозиторий инвентаря: отели, категории номеров и физические номера.
// Счётчики категорий меняются только атомарными условными UPDATE - это закрывает
// гонку "прочитал-проверил-записал" на уровне БД.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инвентаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetHotelByID получает отель по ID
func (r *Repository) GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"city",
		"country",
		"created_at",
		"updated_at",
	).
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHotelByID - build select query: %v", ErrBuildQuery, err)
	}

	var hotel domain.Hotel
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.City,
		&hotel.Country,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHotelByID - scan hotel: %v", ErrScanRow, err)
	}

	hotel.CreatedAt = createdAt.Time
	hotel.UpdatedAt = updatedAt.Time

	return &hotel, nil
}

// GetRoomTypeByID получает категорию номеров по ID
func (r *Repository) GetRoomTypeByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"hotel_id",
		"name",
		"bed_type",
		"max_guests",
		"price_per_night",
		"total_rooms",
		"available_rooms",
		"created_at",
		"updated_at",
	).
		From("room_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomTypeByID - build select query: %v", ErrBuildQuery, err)
	}

	var rt domain.RoomType
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rt.ID,
		&rt.HotelID,
		&rt.Name,
		&rt.BedType,
		&rt.MaxGuests,
		&rt.PricePerNight,
		&rt.TotalRooms,
		&rt.AvailableRooms,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomTypeByID - scan room type: %v", ErrScanRow, err)
	}

	rt.CreatedAt = createdAt.Time
	rt.UpdatedAt = updatedAt.Time

	return &rt, nil
}

// ConsumeRooms атомарно занимает quantity номеров категории.
// Условный декремент: UPDATE срабатывает только если свободных номеров хватает,
// поэтому счётчик не может уйти в минус даже под конкурентной нагрузкой.
func (r *Repository) ConsumeRooms(ctx context.Context, roomTypeID int64, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("room_types").
		Set("available_rooms", squirrel.Expr("available_rooms - ?", quantity)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": roomTypeID}).
		Where(squirrel.GtOrEq{"available_rooms": quantity}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ConsumeRooms - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ConsumeRooms - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ConsumeRooms - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо категории нет, либо номеров не хватило - различаем
		if _, err := r.GetRoomTypeByID(ctx, roomTypeID); err != nil {
			return err
		}
		return ErrInsufficientRooms
	}

	return nil
}

// RestoreRooms атомарно возвращает quantity номеров категории.
// Инвариант available_rooms <= total_rooms охраняется условием UPDATE:
// его нарушение означает повторный restore и отдается как ErrInventoryOverflow.
func (r *Repository) RestoreRooms(ctx context.Context, roomTypeID int64, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("room_types").
		Set("available_rooms", squirrel.Expr("available_rooms + ?", quantity)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": roomTypeID}).
		Where(squirrel.Expr("available_rooms + ? <= total_rooms", quantity)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RestoreRooms - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RestoreRooms - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RestoreRooms - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetRoomTypeByID(ctx, roomTypeID); err != nil {
			return err
		}
		return ErrInventoryOverflow
	}

	return nil
}

// GetRoomInstanceByID получает номер по ID
// Внутри транзакции строка блокируется (FOR UPDATE): смена статуса номера
// и проверка его занятости идут в одной критической секции.
func (r *Repository) GetRoomInstanceByID(ctx context.Context, id int64) (*domain.RoomInstance, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomInstanceColumns...).
		From("room_instances").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomInstanceByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	instance, err := scanRoomInstance(row)
	if err == sql.ErrNoRows {
		return nil, ErrRoomInstanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomInstanceByID - scan room instance: %v", ErrScanRow, err)
	}

	return instance, nil
}

// GetRoomInstancesByHotel получает все номера отеля, упорядоченные
// по этажу и номеру комнаты - для календарного представления
func (r *Repository) GetRoomInstancesByHotel(ctx context.Context, hotelID int64) ([]*domain.RoomInstance, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomInstanceColumns...).
		From("room_instances").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("floor ASC NULLS LAST", "room_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomInstancesByHotel - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomInstancesByHotel - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	instances := make([]*domain.RoomInstance, 0)
	for rows.Next() {
		instance, err := scanRoomInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRoomInstancesByHotel - scan row: %v", ErrScanRow, err)
		}
		instances = append(instances, instance)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomInstancesByHotel - rows error: %v", ErrScanRow, err)
	}

	return instances, nil
}

// UpdateRoomInstanceStatus обновляет статус номера
func (r *Repository) UpdateRoomInstanceStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("room_instances").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRoomInstanceStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRoomInstanceStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRoomInstanceStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomInstanceNotFound
	}

	return nil
}

// roomInstanceColumns колонки таблицы room_instances в порядке сканирования
var roomInstanceColumns = []string{
	"id",
	"room_type_id",
	"hotel_id",
	"room_number",
	"floor",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoomInstance(row rowScanner) (*domain.RoomInstance, error) {
	var instance domain.RoomInstance
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&instance.ID,
		&instance.RoomTypeID,
		&instance.HotelID,
		&instance.RoomNumber,
		&instance.Floor,
		&instance.Status,
		&instance.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	instance.CreatedAt = createdAt.Time
	instance.UpdatedAt = updatedAt.Time

	return &instance, nil
}
