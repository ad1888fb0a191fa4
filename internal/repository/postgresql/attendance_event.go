package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/attendance"
	"github.com/attendease/attendease-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// attendanceEventRepositoryImpl is append-only: there is no update or delete
// path for events, summaries are corrected by recomputation instead.
type attendanceEventRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceEventRepository(db *database.DB) attendance.EventRepository {
	return &attendanceEventRepositoryImpl{db: db}
}

func (r *attendanceEventRepositoryImpl) Append(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (id, employee_id, kind, timestamp, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, kind, timestamp, latitude, longitude, created_at
	`

	var created attendance.Event
	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.Kind,
		event.Timestamp,
		event.Latitude,
		event.Longitude,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.Kind,
		&created.Timestamp,
		&created.Latitude,
		&created.Longitude,
		&created.CreatedAt,
	)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to append attendance event: %w", err)
	}

	return created, nil
}

func (r *attendanceEventRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, timestamp, latitude, longitude, created_at
		FROM attendance_events
		WHERE employee_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	events := make([]attendance.Event, 0)
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(
			&ev.ID,
			&ev.EmployeeID,
			&ev.Kind,
			&ev.Timestamp,
			&ev.Latitude,
			&ev.Longitude,
			&ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance events: %w", err)
	}

	return events, nil
}

func (r *attendanceEventRepositoryImpl) LastKind(ctx context.Context, employeeID string, from, to time.Time) (*attendance.EventKind, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT kind
		FROM attendance_events
		WHERE employee_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp DESC
		LIMIT 1
	`

	var kind attendance.EventKind
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last event kind: %w", err)
	}

	return &kind, nil
}

func (r *attendanceEventRepositoryImpl) EmployeeIDsWithEvents(ctx context.Context, from, to time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_id
		FROM attendance_events
		WHERE timestamp >= $1 AND timestamp < $2
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with events: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee ids: %w", err)
	}

	return ids, nil
}
