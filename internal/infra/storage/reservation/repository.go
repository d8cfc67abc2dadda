package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// pgExclusionViolation код ошибки exclusion constraint PostgreSQL (SQLSTATE 23P01)
const pgExclusionViolation = "23P01"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Таблица reservations несёт exclusion constraint по (car_id, период дат):
// даже если проверка доступности в коде была обойдена гонкой, БД отклонит
// пересекающуюся запись, и метод вернёт ErrDatesConflict.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"customer_id",
			"car_id",
			"start_date",
			"end_date",
		).
		Values(
			res.CustomerID,
			res.CarID,
			res.Dates.Start,
			res.Dates.End,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrDatesConflict
		}
		if txmanager.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: Create - execute insert: %v", txmanager.ErrSerializationFailure, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"customer_id",
		"car_id",
		"start_date",
		"end_date",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", txmanager.ErrSerializationFailure, err)
		}
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByFilter получает бронирования по фильтру (автомобиль, клиент,
// исключаемое бронирование).
//
// Если вызов идёт внутри транзакции и фильтр ограничен одним автомобилем,
// выборка блокируется (FOR UPDATE) - так проверка доступности и последующая
// запись образуют критическую секцию для сценария создания/редактирования.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"customer_id",
		"car_id",
		"start_date",
		"end_date",
		"created_at",
	).
		From("reservations").
		OrderBy("start_date ASC, id ASC")

	if filter.CarID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"car_id": *filter.CarID})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.ExcludeReservationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeReservationID})
	}

	if dbmetrics.IsInTransaction(ctx) && filter.CarID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", txmanager.ErrSerializationFailure, err)
		}
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateDatesAndCar обновляет автомобиль и период бронирования.
// Rental record при этом не затрагивается.
func (r *Repository) UpdateDatesAndCar(ctx context.Context, id int64, carID int64, dates domain.DateRange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("car_id", carID).
		Set("start_date", dates.Start).
		Set("end_date", dates.End).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDatesAndCar - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isExclusionViolation(err) {
			return ErrDatesConflict
		}
		if txmanager.IsSerializationFailure(err) {
			return fmt.Errorf("%w: UpdateDatesAndCar - execute update: %v", txmanager.ErrSerializationFailure, err)
		}
		return fmt.Errorf("%w: UpdateDatesAndCar - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDatesAndCar - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование.
// Вызывается после удаления rental record, в одной транзакции с ним.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ReportRow строка админского отчёта: бронирование с данными клиента,
// автомобиля и состоянием оплаты
type ReportRow struct {
	ReservationID int64
	CustomerName  string
	CustomerEmail string
	CarBrand      string
	CarModel      string
	LicensePlate  string
	StartDate     time.Time
	EndDate       time.Time
	DailyPrice    float64
	Paid          bool
	PaidAt        *time.Time
	CreatedAt     time.Time
}

// GetReport возвращает все бронирования с данными для админского экспорта.
// LEFT JOIN по rental_records: строки с утерянной парной записью тоже
// попадают в отчёт (как неоплаченные).
func (r *Repository) GetReport(ctx context.Context) ([]*ReportRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"cu.name",
		"cu.email",
		"ca.brand",
		"ca.model",
		"ca.license_plate",
		"r.start_date",
		"r.end_date",
		"ca.daily_price",
		"COALESCE(rr.paid, FALSE)",
		"rr.paid_at",
		"r.created_at",
	).
		From("reservations r").
		Join("customers cu ON cu.id = r.customer_id").
		Join("cars ca ON ca.id = r.car_id").
		LeftJoin("rental_records rr ON rr.reservation_id = r.id").
		OrderBy("r.start_date DESC, r.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetReport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	report := make([]*ReportRow, 0)
	for rows.Next() {
		var row ReportRow
		var paidAt sql.NullTime

		err := rows.Scan(
			&row.ReservationID,
			&row.CustomerName,
			&row.CustomerEmail,
			&row.CarBrand,
			&row.CarModel,
			&row.LicensePlate,
			&row.StartDate,
			&row.EndDate,
			&row.DailyPrice,
			&row.Paid,
			&paidAt,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetReport - scan row: %v", ErrScanRow, err)
		}

		if paidAt.Valid {
			t := paidAt.Time
			row.PaidAt = &t
		}

		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReport - rows error: %v", ErrScanRow, err)
	}

	return report, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var start, end time.Time
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.CustomerID,
		&res.CarID,
		&start,
		&end,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.Dates = domain.DateRange{
		Start: domain.TruncateToDay(start),
		End:   domain.TruncateToDay(end),
	}
	res.CreatedAt = createdAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgExclusionViolation
	}
	return false
}
