package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stafflane/hradmin-backend-go/internal/domain/admin"
	"github.com/stafflane/hradmin-backend-go/internal/domain/auth"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo  admin.AdminRepository
	jwtService jwt.Service
}

func NewAuthService(adminRepo admin.AdminRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := a.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return auth.AuthResponse{}, admin.ErrAdminExists
	}
	if !errors.Is(err, admin.ErrAdminNotFound) {
		return auth.AuthResponse{}, fmt.Errorf("failed to check existing admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.adminRepo.Create(ctx, admin.Admin{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create admin: %w", err)
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(created.ID, created.Email)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AuthResponse{
		ID:             created.ID,
		Name:           created.Name,
		Email:          created.Email,
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	adminData, err := a.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(adminData.ID, adminData.Email)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AuthResponse{
		ID:             adminData.ID,
		Name:           adminData.Name,
		Email:          adminData.Email,
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}
