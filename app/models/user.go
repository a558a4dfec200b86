package models

import "time"

// Roles. Registration always yields RoleUser; the admin account is
// seeded from configuration.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. The password hash is never serialised.
type User struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Address      string     `json:"address,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// UserPatch carries the optional fields of a profile update. Nil fields
// are left untouched by Apply.
type UserPatch struct {
	FullName *string `json:"full_name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}

// Apply merges the present fields of the patch into u.
func (u *User) Apply(p UserPatch) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
}

// Identity is the resolved caller identity attached to authenticated
// requests by the access middleware.
type Identity struct {
	UserID uint
	Role   string
}

// IsAdmin reports whether the identity carries the admin capability.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
