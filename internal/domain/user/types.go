package user

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// NewRole defaults an empty role to client.
func NewRole(s string) (Role, error) {
	if s == "" {
		return RoleClient, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
