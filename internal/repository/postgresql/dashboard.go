package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/dashboard"
	"github.com/attendease/attendease-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) CountByStatus(ctx context.Context, date time.Time) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT status, COUNT(*)
		FROM day_summaries
		WHERE date = $1
		GROUP BY status
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to count summaries by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status counts: %w", err)
	}

	return counts, nil
}

func (r *dashboardRepositoryImpl) CountCheckedIn(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM day_summaries
		WHERE date = $1 AND checked_in = true
	`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count checked-in employees: %w", err)
	}
	return count, nil
}

func (r *dashboardRepositoryImpl) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE active = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}
