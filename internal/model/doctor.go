package model

type Doctor struct {
	Base
	EmployeeID      string  `db:"employee_id" json:"employee_id"`
	FullName        string  `db:"full_name" json:"full_name"`
	Specialization  string  `db:"specialization" json:"specialization"`
	Department      string  `db:"department" json:"department"`
	Qualification   string  `db:"qualification" json:"qualification"`
	ExperienceYears int     `db:"experience_years" json:"experience_years"`
	Rating          float64 `db:"rating" json:"rating"`
	PatientCount    int     `db:"patient_count" json:"patient_count"`
	Phone           string  `db:"phone" json:"phone"`
	Email           string  `db:"email" json:"email"`
	Availability    string  `db:"availability" json:"availability,omitempty"`
}

type DoctorFilters struct {
	Query      string `form:"q"`
	Department string `form:"department"`
}
