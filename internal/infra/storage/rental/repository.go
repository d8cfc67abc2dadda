package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// pgUniqueViolation код ошибки unique constraint PostgreSQL (SQLSTATE 23505)
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с rental records и платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает rental record для бронирования с paid = false.
// Вызывается в одной транзакции с созданием бронирования.
func (r *Repository) Create(ctx context.Context, reservationID int64) (*domain.RentalRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rental_records").
		Columns("reservation_id", "paid").
		Values(reservationID, false).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	record := &domain.RentalRecord{ReservationID: reservationID, Paid: false}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		if txmanager.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: Create - execute insert: %v", txmanager.ErrSerializationFailure, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return record, nil
}

// GetByID получает rental record по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RentalRecord, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByReservationID получает rental record по ID бронирования
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.RentalRecord, error) {
	return r.getOne(ctx, squirrel.Eq{"reservation_id": reservationID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.RentalRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"paid",
		"paid_at",
	).
		From("rental_records").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.RentalRecord
	var paidAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.ReservationID,
		&record.Paid,
		&paidAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: getOne - scan rental record: %v", txmanager.ErrSerializationFailure, err)
		}
		return nil, fmt.Errorf("%w: getOne - scan rental record: %v", ErrScanRow, err)
	}

	if paidAt.Valid {
		t := paidAt.Time
		record.PaidAt = &t
	}

	return &record, nil
}

// MarkPaid помечает rental record оплаченной.
// Идемпотентно: повторный вызов не меняет paid_at и не является ошибкой.
func (r *Repository) MarkPaid(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rental_records").
		Set("paid", true).
		Set("paid_at", squirrel.Expr("COALESCE(paid_at, NOW())")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

// DeleteByReservationID удаляет rental record бронирования.
// Отсутствие записи не считается ошибкой: у старых бронирований парная
// запись могла быть утеряна.
func (r *Repository) DeleteByReservationID(ctx context.Context, reservationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rental_records").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByReservationID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByReservationID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// CreatePayment создает информационную запись о платеже
func (r *Repository) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("rental_id", "amount", "method").
		Values(payment.RentalID, payment.Amount, payment.Method).
		Suffix("RETURNING id, paid_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePayment - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID, &payment.PaidAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePayment - execute insert: %v", ErrExecQuery, err)
	}

	return payment, nil
}

// GetPaymentsByRentalID возвращает платежи rental record (для отчётности).
// Пустой список для оплаченной записи - валидное состояние.
func (r *Repository) GetPaymentsByRentalID(ctx context.Context, rentalID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"rental_id",
		"amount",
		"method",
		"paid_at",
	).
		From("payments").
		Where(squirrel.Eq{"rental_id": rentalID}).
		OrderBy("paid_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPaymentsByRentalID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPaymentsByRentalID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.RentalID, &p.Amount, &p.Method, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("%w: GetPaymentsByRentalID - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPaymentsByRentalID - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
