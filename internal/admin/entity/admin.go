package entity

import (
	"errors"
	"time"
)

var ErrRoleUnknown = errors.New("admin: role is unknown")

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ParseRole returns RoleAdmin for an empty value.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleAdmin, nil
	}

	r := Role(s)
	if !r.IsValid() {
		return "", ErrRoleUnknown
	}

	return r, nil
}

type Admin struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewAdmin struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     Role
}

// PatchAdmin carries optional changes; nil fields are left untouched.
type PatchAdmin struct {
	ID       int64
	Name     *string
	Email    *string
	Password *string
	Role     *Role
	IsActive *bool
}

func (p PatchAdmin) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil && p.Role == nil && p.IsActive == nil
}

type AdminListFilter struct {
	Size   int32
	Offset int32
}
