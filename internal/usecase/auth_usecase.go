// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// CompanyName is only meaningful for merchant registrations.
type RegisterInput struct {
	Username    string
	Password    string
	Name        string
	Surname     string
	Type        entity.UserType
	CompanyName string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued token after a successful registration or login.
type AuthOutput struct {
	Token     string          `json:"token"`
	TokenType string          `json:"tokenType"`
	Username  string          `json:"username"`
	Type      entity.UserType `json:"type"`
}

// AuthUsecase defines the interface for account registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
