package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
	"github.com/m04kA/SMC-SalonBot/pkg/psqlbuilder"
)

// Repository журнал разрешённых заявок в PostgreSQL.
// Append-only аудит: реестр в памяти остаётся единственным источником
// истины для неразрешённых заявок, журнал хранит только итоги.
type Repository struct {
	db *sql.DB
}

// NewRepository создает новый экземпляр журнала истории
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Append записывает итог рассмотрения заявки в журнал
func (r *Repository) Append(ctx context.Context, resolution *domain.Resolution) error {
	record := resolution.Record

	query, args, err := psqlbuilder.Insert("booking_history").
		Columns(
			"booking_id",
			"user_chat_id",
			"user_name",
			"username",
			"service_code",
			"service_name",
			"slot_date",
			"slot_time",
			"status",
			"reason",
			"requested_at",
			"resolved_at",
		).
		Values(
			record.ID,
			record.UserChatID,
			record.UserName,
			record.Username,
			string(record.Service),
			record.Service.Label(),
			record.Slot.Date,
			record.Slot.StartTime.String(),
			string(resolution.Status),
			resolution.Reason,
			record.CreatedAt,
			resolution.ResolvedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CountSince возвращает количество записей журнала с указанного момента,
// с разбивкой по статусу
func (r *Repository) CountSince(ctx context.Context, since time.Time) (map[domain.BookingStatus]int64, error) {
	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("booking_history").
		Where("resolved_at >= ?", since).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountSince - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountSince - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountSince - scan row: %v", ErrScanRow, err)
		}
		counts[domain.BookingStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountSince - iterate rows: %v", ErrScanRow, err)
	}

	return counts, nil
}
