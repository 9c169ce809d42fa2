package closure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m0rzh/BAP-AvailabilityService/internal/domain"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/dbmetrics"
	"github.com/m0rzh/BAP-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения закрытий (отпуск, болезнь, ремонт)
// Жизненный цикл закрытий (создание, редактирование, отмена) принадлежит
// CRUD-слою дашборда; этот сервис их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var closureColumns = []string{
	"id",
	"business_id",
	"type",
	"reason",
	"start_date",
	"end_date",
	"is_active",
	"created_at",
	"updated_at",
}

// ListActiveOverlapping получает активные закрытия бизнеса, пересекающие
// абсолютный полуинтервал [from, to)
// Используется движком доступности; точную проверку по границам дня
// в зоне бизнеса движок делает сам
func (r *Repository) ListActiveOverlapping(ctx context.Context, businessID int64, from, to time.Time) ([]domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closures").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Lt{"start_date": to}).
		Where(squirrel.Gt{"end_date": from}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClosures(rows)
}

// ListForRange получает все закрытия бизнеса (включая неактивные),
// пересекающие полуинтервал [from, to)
// Используется дашбордом: неактивные закрытия показываются, но не действуют
func (r *Repository) ListForRange(ctx context.Context, businessID int64, from, to time.Time) ([]domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closures").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Lt{"start_date": to}).
		Where(squirrel.Gt{"end_date": from}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClosures(rows)
}

func scanClosures(rows *sql.Rows) ([]domain.Closure, error) {
	closures := make([]domain.Closure, 0)

	for rows.Next() {
		var (
			c         domain.Closure
			reason    sql.NullString
			createdAt sql.NullTime
			updatedAt sql.NullTime
		)

		err := rows.Scan(
			&c.ID,
			&c.BusinessID,
			&c.Type,
			&reason,
			&c.StartDate,
			&c.EndDate,
			&c.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan closure row: %v", ErrScanRow, err)
		}

		if reason.Valid {
			c.Reason = &reason.String
		}
		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		closures = append(closures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate closure rows: %v", ErrScanRow, err)
	}

	return closures, nil
}
