package admin

import "context"

type AdminRepository interface {
	GetByID(ctx context.Context, id string) (Admin, error)
	GetByEmail(ctx context.Context, email string) (Admin, error)
	Create(ctx context.Context, newAdmin Admin) (Admin, error)
}
