package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/dbmetrics"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/psqlbuilder"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/ptr"
)

// Repository репозиторий для работы с записями на услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// appointmentColumns колонки таблицы appointments
// Время записи хранится в двух вариантах: локальные start_time ("HH:MM") +
// duration_minutes для записей, созданных через дашборд, и абсолютные
// start_at/end_at (timestamptz) для записей, пришедших синхронизацией из
// внешнего booking API. Движок доступности нормализует оба варианта сам.
var appointmentColumns = []string{
	"id",
	"business_id",
	"service_id",
	"user_id",
	"appointment_date",
	"start_time",
	"start_at",
	"end_at",
	"duration_minutes",
	"status",
	"created_at",
	"updated_at",
}

// ListActiveForDate получает все активные записи бизнеса на конкретную дату
// Отмененные и no-show записи не занимают время и не возвращаются
func (r *Repository) ListActiveForDate(ctx context.Context, businessID int64, date time.Time) ([]domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": domain.InactiveStatuses}).
		OrderBy("start_time ASC, start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	appointments := make([]domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, *appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate appointment rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// scanAppointment сканирует одну строку в доменную модель
// Предпочитает абсолютный start_at, если он есть, иначе локальный start_time
func scanAppointment(scan func(dest ...interface{}) error) (*domain.Appointment, error) {
	var (
		appt            domain.Appointment
		startTime       sql.NullString
		startAt         sql.NullTime
		endAt           sql.NullTime
		durationMinutes sql.NullInt64
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
	)

	err := scan(
		&appt.ID,
		&appt.BusinessID,
		&appt.ServiceID,
		&appt.UserID,
		&appt.Date,
		&startTime,
		&startAt,
		&endAt,
		&durationMinutes,
		&appt.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	switch {
	case startAt.Valid:
		appt.StartTime = startAt.Time.UTC().Format(time.RFC3339)
	case startTime.Valid:
		// TIME колонка приходит как "HH:MM:SS", обрезаем до "HH:MM"
		s := startTime.String
		if len(s) > 5 {
			s = s[:5]
		}
		appt.StartTime = s
	}

	if endAt.Valid {
		appt.EndTime = ptr.Ptr(endAt.Time.UTC().Format(time.RFC3339))
	}
	if durationMinutes.Valid {
		appt.DurationMinutes = int(durationMinutes.Int64)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}
