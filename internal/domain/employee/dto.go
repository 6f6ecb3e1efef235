package employee

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/stafflane/hradmin-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpID         string `json:"empId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Department    string `json:"department"`
	Country       string `json:"country"`
	State         string `json:"state"`
	City          string `json:"city"`
	DateOfJoining string `json:"dateOfJoining"` // YYYY-MM-DD
	DOB           string `json:"dob"`           // YYYY-MM-DD
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	Address       string `json:"address"`

	PhotoURL   *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"empId":         r.EmpID,
		"firstName":     r.FirstName,
		"lastName":      r.LastName,
		"department":    r.Department,
		"country":       r.Country,
		"state":         r.State,
		"city":          r.City,
		"dateOfJoining": r.DateOfJoining,
		"dob":           r.DOB,
		"email":         r.Email,
		"mobile":        r.Mobile,
		"address":       r.Address,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}

	if !validator.IsEmpty(r.Mobile) && !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "invalid mobile number",
		})
	}

	if !validator.IsEmpty(r.DateOfJoining) {
		if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dateOfJoining",
				Message: "dateOfJoining must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(r.DOB) {
		if _, ok := validator.IsValidDate(r.DOB); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "profile photo is required",
		})
	} else {
		ext := strings.ToLower(r.FileHeader.Filename[strings.LastIndex(r.FileHeader.Filename, ".")+1:])
		if ext != "jpg" && ext != "jpeg" && ext != "png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	EmpID         *string `json:"empId,omitempty"`
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	Department    *string `json:"department,omitempty"`
	Country       *string `json:"country,omitempty"`
	State         *string `json:"state,omitempty"`
	City          *string `json:"city,omitempty"`
	DateOfJoining *string `json:"dateOfJoining,omitempty"`
	DOB           *string `json:"dob,omitempty"`
	Email         *string `json:"email,omitempty"`
	Mobile        *string `json:"mobile,omitempty"`
	Address       *string `json:"address,omitempty"`

	PhotoURL   *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(strings.TrimSpace(*r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}

	if r.Mobile != nil && !validator.IsValidMobile(*r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "invalid mobile number",
		})
	}

	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dateOfJoining",
				Message: "dateOfJoining must be in YYYY-MM-DD format",
			})
		}
	}

	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}

	if r.FileHeader != nil {
		ext := strings.ToLower(r.FileHeader.Filename[strings.LastIndex(r.FileHeader.Filename, ".")+1:])
		if ext != "jpg" && ext != "jpeg" && ext != "png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	Search *string `json:"search,omitempty"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 8
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func (r *SearchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Query) {
		errs = append(errs, validator.ValidationError{
			Field:   "query",
			Message: "search query is required",
		})
	}

	if r.Limit <= 0 || r.Limit > 20 {
		r.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	EmpID         string `json:"empId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Department    string `json:"department"`
	Country       string `json:"country"`
	State         string `json:"state"`
	City          string `json:"city"`
	DateOfJoining string `json:"dateOfJoining"`
	DOB           string `json:"dob"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	Address       string `json:"address"`
	Photo         string `json:"photo,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		EmpID:         e.EmpID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Department:    e.Department,
		Country:       e.Country,
		State:         e.State,
		City:          e.City,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		DOB:           e.DOB.Format("2006-01-02"),
		Email:         e.Email,
		Mobile:        e.Mobile,
		Address:       e.Address,
		Photo:         e.PhotoURL,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

type SearchResult struct {
	ID         string `json:"id"`
	EmpID      string `json:"empId"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type Pagination struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination derives the page window metadata from a total row count.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

type ListResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination Pagination         `json:"pagination"`
}
