package commands

import (
	"context"
	"time"

	"tripdesk/internal/pkg/clock"
	"tripdesk/internal/pkg/config"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/pkg/jwt"
	"tripdesk/internal/pkg/password"
)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Email     string
	Role      string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	staff      config.StaffConfig
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		staff:      cfg.Staff,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Login checks the quoting tool's staff credentials and issues a token.
// The same sentinel covers unknown email and wrong password.
func (a *authCommandsImpl) Login(_ context.Context, email, plainPassword string) (*LoginResult, error) {
	if email != a.staff.Email {
		return nil, errs.ErrInvalidCredentials
	}

	if err := password.ComparePassword(a.staff.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(email, jwt.RoleStaff)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: a.clock.Now().Add(a.jwtService.TokenDuration()),
		Email:     email,
		Role:      jwt.RoleStaff,
	}, nil
}
