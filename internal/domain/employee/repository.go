package employee

import (
	"context"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string) (bool, error)
	Update(ctx context.Context, emp Employee) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	// ListActiveIDs returns the IDs of all active employees, used by the
	// absent-marking job to find who has no events for a day.
	ListActiveIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}
