package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Manages employees, geofences and settings
	RoleEmployee Role = "employee" // Checks in/out, sees own summaries
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if the user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
