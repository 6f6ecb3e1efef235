package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// Existence checks take an optional excludeID so updates can skip the
	// record's own row when enforcing uniqueness.
	ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error)
	ExistsByEmpID(ctx context.Context, empID string, excludeID *string) (bool, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	Search(ctx context.Context, query string, limit int) ([]Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}
