package employee

import "time"

type Employee struct {
	ID            string
	EmpID         string
	FirstName     string
	LastName      string
	Department    string
	Country       string
	State         string
	City          string
	DateOfJoining time.Time
	DOB           time.Time
	Email         string
	Mobile        string
	Address       string
	PhotoURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName returns "firstName lastName" for display and snapshots.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
