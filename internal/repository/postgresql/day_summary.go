package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/attendance"
	"github.com/attendease/attendease-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type daySummaryRepositoryImpl struct {
	db *database.DB
}

func NewDaySummaryRepository(db *database.DB) attendance.SummaryRepository {
	return &daySummaryRepositoryImpl{db: db}
}

// Upsert replaces the stored summary keyed by (employee_id, date). Every
// recompute writes the full row, so conflicting updates cannot interleave
// partial state.
func (r *daySummaryRepositoryImpl) Upsert(ctx context.Context, summary attendance.DaySummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_summaries (
			employee_id, date, work_minutes, break_minutes, overtime_minutes,
			first_check_in, last_check_out, event_count, checked_in, status, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (employee_id, date) DO UPDATE SET
			work_minutes     = EXCLUDED.work_minutes,
			break_minutes    = EXCLUDED.break_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes,
			first_check_in   = EXCLUDED.first_check_in,
			last_check_out   = EXCLUDED.last_check_out,
			event_count      = EXCLUDED.event_count,
			checked_in       = EXCLUDED.checked_in,
			status           = EXCLUDED.status,
			updated_at       = NOW()
	`

	_, err := q.Exec(ctx, query,
		summary.EmployeeID,
		summary.Date,
		summary.WorkMinutes,
		summary.BreakMinutes,
		summary.OvertimeMinutes,
		summary.FirstCheckIn,
		summary.LastCheckOut,
		summary.EventCount,
		summary.CheckedIn,
		summary.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert day summary: %w", err)
	}

	return nil
}

func (r *daySummaryRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.DaySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.employee_id, s.date, s.work_minutes, s.break_minutes, s.overtime_minutes,
		       s.first_check_in, s.last_check_out, s.event_count, s.checked_in, s.status,
		       s.updated_at, e.full_name, e.employee_code
		FROM day_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.date = $2
	`

	var s attendance.DaySummary
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&s.EmployeeID,
		&s.Date,
		&s.WorkMinutes,
		&s.BreakMinutes,
		&s.OvertimeMinutes,
		&s.FirstCheckIn,
		&s.LastCheckOut,
		&s.EventCount,
		&s.CheckedIn,
		&s.Status,
		&s.UpdatedAt,
		&s.EmployeeName,
		&s.EmployeeCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DaySummary{}, attendance.ErrSummaryNotFound
		}
		return attendance.DaySummary{}, fmt.Errorf("failed to get day summary: %w", err)
	}

	return s, nil
}

func (r *daySummaryRepositoryImpl) List(ctx context.Context, filter attendance.SummaryFilter) ([]attendance.DaySummary, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("s.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("s.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM day_summaries s WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count day summaries: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := fmt.Sprintf(`
		SELECT s.employee_id, s.date, s.work_minutes, s.break_minutes, s.overtime_minutes,
		       s.first_check_in, s.last_check_out, s.event_count, s.checked_in, s.status,
		       s.updated_at, e.full_name, e.employee_code
		FROM day_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY s.date DESC, e.full_name ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list day summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]attendance.DaySummary, 0)
	for rows.Next() {
		var s attendance.DaySummary
		if err := rows.Scan(
			&s.EmployeeID,
			&s.Date,
			&s.WorkMinutes,
			&s.BreakMinutes,
			&s.OvertimeMinutes,
			&s.FirstCheckIn,
			&s.LastCheckOut,
			&s.EventCount,
			&s.CheckedIn,
			&s.Status,
			&s.UpdatedAt,
			&s.EmployeeName,
			&s.EmployeeCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan day summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read day summaries: %w", err)
	}

	return summaries, total, nil
}

// SetStatus writes a status-only row, used for days without events (absent
// or on leave). An existing recomputed summary keeps its totals.
func (r *daySummaryRepositoryImpl) SetStatus(ctx context.Context, employeeID string, date time.Time, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_summaries (
			employee_id, date, work_minutes, break_minutes, overtime_minutes,
			event_count, checked_in, status, updated_at
		)
		VALUES ($1, $2, 0, 0, 0, 0, false, $3, NOW())
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status     = EXCLUDED.status,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, date, status); err != nil {
		return fmt.Errorf("failed to set day status: %w", err)
	}
	return nil
}
