package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrNameExists             = errors.New("name already taken")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrCannotDeleteAdmin      = errors.New("admin accounts cannot be deleted")
	ErrCannotDeleteSelf       = errors.New("cannot delete your own account")
)
