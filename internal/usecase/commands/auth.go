package commands

import (
	"context"
	"log/slog"

	"marketplace-api/internal/domain/auth"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/jwt"
	"marketplace-api/internal/pkg/password"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrInvalidCredentials = errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthorized)
	ErrUserInactive       = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
	ErrEmailTaken         = errs.Mark(errs.New("email already registered"), errs.ErrConflict)
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.Mark(errs.New("token validation failed"), errs.ErrUnauthorized)
)

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     *password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher *password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, classify(err)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, classify(err)
	}
	role, err := user.NewSignupRole(req.Role)
	if err != nil {
		return uuid.Nil, classify(err)
	}
	name, err := user.NewName(req.FirstName, req.LastName)
	if err != nil {
		return uuid.Nil, classify(err)
	}
	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(email, hash, role, name, a.clock.Now())
	d := a.uow.Direct()
	if err := d.Users().Create(ctx, d.DB(), u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, classify(err)
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issue(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	d := a.uow.Direct()
	if updateErr := d.Users().UpdateLastLogin(ctx, d.DB(), u.ID(), a.clock.Now()); updateErr != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", updateErr.Error())
	}

	return &LoginResult{
		UserID:    u.ID(),
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		slog.Debug("refresh token rejected", "error", err.Error())
		return nil, ErrTokenValidation
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate user still exists and is active; the role is re-read so promotions take effect.
	d := a.uow.Direct()
	u, err := d.Users().FindByID(ctx, d.DB(), claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, classify(err)
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issue(u.ID(), u.Role())
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*user.User, error) {
	d := a.uow.Direct()
	u, err := d.Users().FindByEmail(ctx, d.DB(), credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Return same error as password mismatch to prevent user enumeration attacks
			return nil, ErrInvalidCredentials
		}
		return nil, classify(err)
	}

	if err := a.hasher.Compare(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return u, nil
}
