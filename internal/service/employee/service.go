package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/employee"
	"github.com/attendease/attendease-backend-go/internal/domain/user"
	"github.com/attendease/attendease-backend-go/internal/pkg/database"
	"github.com/attendease/attendease-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db        *database.DB
	employees employee.EmployeeRepository
	users     user.UserRepository
}

func NewEmployeeService(db *database.DB, employees employee.EmployeeRepository, users user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:        db,
		employees: employees,
		users:     users,
	}
}

// Create implements employee.EmployeeService. The login account and the
// employee record are created in one transaction so neither can exist alone.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, user.ErrEmailExists
	}

	exists, err = s.employees.ExistsByCodeOrEmail(ctx, req.EmployeeCode, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.IsAdmin {
		role = user.RoleAdmin
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		hash := string(passwordHash)
		newUser, err := s.users.Create(txCtx, user.User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			PasswordHash: &hash,
			Role:         role,
			Active:       true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user account: %w", err)
		}

		created, err = s.employees.Create(txCtx, employee.Employee{
			ID:           uuid.NewString(),
			UserID:       &newUser.ID,
			FullName:     req.FullName,
			EmployeeCode: req.EmployeeCode,
			Email:        req.Email,
			Position:     req.Position,
			Department:   req.Department,
			Active:       true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employees.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, toEmployeeResponse(emp))
	}
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	if err := s.employees.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Keep the login account in step with the employee flag
	if req.Active != nil && emp.UserID != nil {
		if err := s.users.SetActive(ctx, *emp.UserID, *req.Active); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	return toEmployeeResponse(emp), nil
}

// Delete implements employee.EmployeeService. Deactivation rather than
// removal: attendance history references the employee forever.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}

	if emp.UserID != nil {
		if err := s.users.SetActive(ctx, *emp.UserID, false); err != nil {
			return err
		}
	}
	return nil
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		EmployeeCode: e.EmployeeCode,
		Email:        e.Email,
		Position:     e.Position,
		Department:   e.Department,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}
