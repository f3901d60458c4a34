package user

import (
	"github.com/google/uuid"
)

// User is the read-only view of an account owning appointments.
// Accounts are managed by the identity service.
type User struct {
	id    uuid.UUID
	email Email
	name  string
	role  Role
}

func Reconstruct(id uuid.UUID, email, name string, role Role) (*User, error) {
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:    id,
		email: e,
		name:  name,
		role:  role,
	}, nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Email() Email  { return u.email }
func (u *User) Name() string  { return u.name }
func (u *User) Role() Role    { return u.role }

// DisplayName falls back to the e-mail address when no name is on file.
func (u *User) DisplayName() string {
	if u.name != "" {
		return u.name
	}
	return u.email.Value()
}
