package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafflane/hradmin-backend-go/internal/domain/admin"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/database"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

// GetByID implements admin.AdminRepository.
func (a *adminRepositoryImpl) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, name, email, password_hash, created_at
		FROM admins
		WHERE id = $1
	`

	var found admin.Admin
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Name, &found.Email, &found.PasswordHash, &found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin by id: %w", err)
	}

	return found, nil
}

// GetByEmail implements admin.AdminRepository.
func (a *adminRepositoryImpl) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, name, email, password_hash, created_at
		FROM admins
		WHERE email = $1
	`

	var found admin.Admin
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID, &found.Name, &found.Email, &found.PasswordHash, &found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return found, nil
}

// Create implements admin.AdminRepository.
func (a *adminRepositoryImpl) Create(ctx context.Context, newAdmin admin.Admin) (admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO admins (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, created_at
	`

	var created admin.Admin
	err := q.QueryRow(ctx, query, newAdmin.Name, newAdmin.Email, newAdmin.PasswordHash).Scan(
		&created.ID, &created.Name, &created.Email, &created.PasswordHash, &created.CreatedAt,
	)
	if err != nil {
		return admin.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return created, nil
}
