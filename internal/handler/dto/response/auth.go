package response

import (
	"time"

	"tripdesk/internal/usecase/commands"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.Token,
		ExpiresAt:   r.ExpiresAt,
		Email:       r.Email,
		Role:        r.Role,
	}
}
