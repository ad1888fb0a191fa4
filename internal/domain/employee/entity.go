package employee

import "time"

type Employee struct {
	ID           string
	UserID       *string
	FullName     string
	EmployeeCode string
	Email        string
	Position     *string
	Department   *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
