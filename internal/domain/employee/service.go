package employee

import (
	"context"
)

// EmployeeService defines business logic for employee administration
type EmployeeService interface {
	// Create registers an employee together with their login account
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// Update modifies employee master data
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee and deactivates their account
	Delete(ctx context.Context, id string) error
}
