//go:build unit || e2e

package builder

import (
	"marketplace-api/internal/domain/user"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Password     string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	IsActive     bool
	Profile      user.ProfileInput
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "both",
		FirstName:    "Test",
		LastName:     "User",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(u.FirstName, u.LastName)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.PasswordHash, role, name, FixedNow), nil
}

// BuildReconstructed keeps the builder's ID and active flag.
func (u *UserBuilder) BuildReconstructed() *user.User {
	email, _ := user.NewEmail(u.Email)
	name, _ := user.NewName(u.FirstName, u.LastName)
	profile, _ := user.NewProfile(u.Profile)
	return user.ReconstructUser(u.ID, email, u.PasswordHash, user.Role(u.Role), name, profile, nil, u.IsActive, FixedNow, FixedNow)
}

func (u *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.Profile.DisplayName,
		Bio:         u.Profile.Bio,
		IsActive:    u.IsActive,
		CreatedAt:   FixedNow,
	}
}

func (u *UserBuilder) BuildPublicView() *queries.PublicUserView {
	return &queries.PublicUserView{
		ID:          u.ID,
		Role:        u.Role,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.Profile.DisplayName,
		Bio:         u.Profile.Bio,
		CreatedAt:   FixedNow,
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: u.Password}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName, u.LastName = first, last
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
