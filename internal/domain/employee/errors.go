package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmpIDExists      = errors.New("employee ID already in use")
	ErrEmailExists      = errors.New("employee already exists with this email")
)
