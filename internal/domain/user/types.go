package user

type Role string

const (
	RoleShopper  Role = "shopper"
	RoleTraveler Role = "traveler"
	RoleBoth     Role = "both"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleShopper, RoleTraveler, RoleBoth, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsShopper() bool  { return r == RoleShopper || r == RoleBoth }
func (r Role) IsTraveler() bool { return r == RoleTraveler || r == RoleBoth }
func (r Role) IsAdmin() bool    { return r == RoleAdmin }

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// NewSignupRole rejects admin; admins are provisioned out of band.
func NewSignupRole(s string) (Role, error) {
	if s == "" {
		return RoleBoth, nil
	}
	role, err := NewRole(s)
	if err != nil {
		return "", err
	}
	if role == RoleAdmin {
		return "", ErrInvalidRole
	}
	return role, nil
}
