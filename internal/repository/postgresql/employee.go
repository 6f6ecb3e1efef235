package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stafflane/hradmin-backend-go/internal/domain/employee"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/database"
)

const employeeColumns = `id, emp_id, first_name, last_name, department, country, state, city,
		date_of_joining, dob, email, mobile, address, photo_url, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmpID, &emp.FirstName, &emp.LastName, &emp.Department,
		&emp.Country, &emp.State, &emp.City, &emp.DateOfJoining, &emp.DOB,
		&emp.Email, &emp.Mobile, &emp.Address, &emp.PhotoURL,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (
			emp_id, first_name, last_name, department, country, state, city,
			date_of_joining, dob, email, mobile, address, photo_url
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13
		)
		RETURNING %s
	`, employeeColumns)

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.EmpID, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.Department, newEmployee.Country, newEmployee.State, newEmployee.City,
		newEmployee.DateOfJoining, newEmployee.DOB, newEmployee.Email,
		newEmployee.Mobile, newEmployee.Address, newEmployee.PhotoURL,
	))
	if err != nil {
		// Concurrent inserts can slip past the service-level uniqueness
		// checks; the constraints are the backstop.
		if uniqueErr := mapEmployeeUniqueViolation(err); uniqueErr != nil {
			return employee.Employee{}, uniqueErr
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// mapEmployeeUniqueViolation translates a unique_violation on the employees
// table into the matching domain error. Nil for any other error.
func mapEmployeeUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return employee.ErrEmailExists
	}
	return employee.ErrEmpIDExists
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	var err error
	if excludeID != nil {
		query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND id <> $2)`
		err = q.QueryRow(ctx, query, email, *excludeID).Scan(&exists)
	} else {
		query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`
		err = q.QueryRow(ctx, query, email).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// ExistsByEmpID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmpID(ctx context.Context, empID string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	var err error
	if excludeID != nil {
		query := `SELECT EXISTS(SELECT 1 FROM employees WHERE emp_id = $1 AND id <> $2)`
		err = q.QueryRow(ctx, query, empID, *excludeID).Scan(&exists)
	} else {
		query := `SELECT EXISTS(SELECT 1 FROM employees WHERE emp_id = $1)`
		err = q.QueryRow(ctx, query, empID).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check emp_id existence: %w", err)
	}

	return exists, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR department ILIKE $%d OR emp_id ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Search implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Search(ctx context.Context, queryStr string, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE emp_id ILIKE $1 OR first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY emp_id ASC
		LIMIT $2
	`, employeeColumns)

	searchPattern := "%" + queryStr + "%"
	rows, err := q.Query(ctx, query, searchPattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	updates := make(map[string]interface{})

	if req.EmpID != nil && *req.EmpID != "" {
		updates["emp_id"] = *req.EmpID
	}
	if req.FirstName != nil && *req.FirstName != "" {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != "" {
		updates["last_name"] = *req.LastName
	}
	if req.Department != nil && *req.Department != "" {
		updates["department"] = *req.Department
	}
	if req.Country != nil && *req.Country != "" {
		updates["country"] = *req.Country
	}
	if req.State != nil && *req.State != "" {
		updates["state"] = *req.State
	}
	if req.City != nil && *req.City != "" {
		updates["city"] = *req.City
	}
	if req.DateOfJoining != nil && *req.DateOfJoining != "" {
		parsed, _ := time.Parse("2006-01-02", *req.DateOfJoining)
		updates["date_of_joining"] = parsed
	}
	if req.DOB != nil && *req.DOB != "" {
		parsed, _ := time.Parse("2006-01-02", *req.DOB)
		updates["dob"] = parsed
	}
	if req.Email != nil && *req.Email != "" {
		updates["email"] = *req.Email
	}
	if req.Mobile != nil && *req.Mobile != "" {
		updates["mobile"] = *req.Mobile
	}
	if req.Address != nil && *req.Address != "" {
		updates["address"] = *req.Address
	}
	if req.PhotoURL != nil && *req.PhotoURL != "" {
		updates["photo_url"] = *req.PhotoURL
	}

	if len(updates) == 0 {
		return e.GetByID(ctx, id)
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	query := fmt.Sprintf(
		"UPDATE employees SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), i, employeeColumns,
	)
	args = append(args, id)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if uniqueErr := mapEmployeeUniqueViolation(err); uniqueErr != nil {
			return employee.Employee{}, uniqueErr
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
