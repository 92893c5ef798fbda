package employee

import (
	"time"
)

// Employee is owned by the employee-management collaborator. The time bank
// only reads it: the hire date drives vacation accrual and the contact fields
// address monthly statements.
type Employee struct {
	ID               string
	FullName         string
	Email            string
	PositionName     *string
	DepartmentName   *string
	Role             Role
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleOwner    Role = "owner"
)

// CanManage reports whether the role may run administrative time bank operations.
func (r Role) CanManage() bool {
	return r == RoleManager || r == RoleOwner
}
