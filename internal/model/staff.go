package model

import "time"

type Staff struct {
	Base
	EmployeeID string    `db:"employee_id" json:"employee_id"`
	FullName   string    `db:"full_name" json:"full_name"`
	Role       string    `db:"role" json:"role"`
	Department string    `db:"department" json:"department"`
	Shift      string    `db:"shift" json:"shift,omitempty"`
	Salary     *float64  `db:"salary" json:"salary,omitempty"`
	Phone      string    `db:"phone" json:"phone"`
	Email      string    `db:"email" json:"email"`
	JoinedDate time.Time `db:"joined_date" json:"joined_date"`
}

type StaffFilters struct {
	Query      string `form:"q"`
	Department string `form:"department"`
}
