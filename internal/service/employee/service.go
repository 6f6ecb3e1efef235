package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stafflane/hradmin-backend-go/internal/domain/employee"
	"github.com/stafflane/hradmin-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		fileService:  fileService,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	emailExists, err := s.employeeRepo.ExistsByEmail(ctx, email, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if emailExists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	empIDExists, err := s.employeeRepo.ExistsByEmpID(ctx, req.EmpID, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check empId uniqueness: %w", err)
	}
	if empIDExists {
		return employee.EmployeeResponse{}, employee.ErrEmpIDExists
	}

	photoURL := ""
	if req.File != nil {
		uploaded, err := s.fileService.UploadEmployeePhoto(ctx, req.EmpID, req.File, req.FileHeader.Filename)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to upload photo: %w", err)
		}
		photoURL = uploaded
	} else if req.PhotoURL != nil {
		photoURL = *req.PhotoURL
	}

	dateOfJoining, _ := time.Parse("2006-01-02", req.DateOfJoining)
	dob, _ := time.Parse("2006-01-02", req.DOB)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmpID:         req.EmpID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Department:    req.Department,
		Country:       req.Country,
		State:         req.State,
		City:          req.City,
		DateOfJoining: dateOfJoining,
		DOB:           dob,
		Email:         email,
		Mobile:        req.Mobile,
		Address:       req.Address,
		PhotoURL:      photoURL,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(found), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.Filter) (employee.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}

	return employee.ListResponse{
		Employees:  responses,
		Pagination: employee.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

// SearchEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, req employee.SearchRequest) ([]employee.SearchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.Search(ctx, strings.TrimSpace(req.Query), req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	results := make([]employee.SearchResult, 0, len(employees))
	for _, emp := range employees {
		results = append(results, employee.SearchResult{
			ID:         emp.ID,
			EmpID:      emp.EmpID,
			Name:       emp.FullName(),
			Department: emp.Department,
		})
	}

	return results, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &email

		exists, err := s.employeeRepo.ExistsByEmail(ctx, email, &id)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	if req.EmpID != nil {
		exists, err := s.employeeRepo.ExistsByEmpID(ctx, *req.EmpID, &id)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check empId uniqueness: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmpIDExists
		}
	}

	if req.File != nil {
		current, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}

		uploaded, err := s.fileService.UploadEmployeePhoto(ctx, current.EmpID, req.File, req.FileHeader.Filename)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to upload photo: %w", err)
		}
		req.PhotoURL = &uploaded

		// Old photo is replaced; removal failure is not fatal
		if current.PhotoURL != "" {
			_ = s.fileService.DeleteFile(ctx, current.PhotoURL)
		}
	}

	updated, err := s.employeeRepo.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	if found.PhotoURL != "" {
		_ = s.fileService.DeleteFile(ctx, found.PhotoURL)
	}

	return nil
}
