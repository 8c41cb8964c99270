package handler

import "github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"

// messageResponse is the error envelope returned on all 4xx/5xx responses.
type messageResponse struct {
	Message string `json:"message"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"    validate:"max=254"`
	Password string `json:"password" validate:"max=128"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"max=254"`
	Password string `json:"password" validate:"max=128"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}
