package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrAdminPrivilegeRequired = errors.New("administrator privilege required")
	ErrUserInactive           = errors.New("user account is deactivated")
)
