package model

import "time"

// Employee is employee model entity
type Employee struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Department  string    `json:"department" bson:"department"`
	Designation string    `json:"designation" bson:"designation"`
	Username    string    `json:"username" bson:"username"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone" bson:"phone"`
	Dob         string    `json:"dob" bson:"dob"`
	Address     string    `json:"address" bson:"address"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// EmployeePatch contains employee fields to change, nil fields are kept as is
type EmployeePatch struct {
	Name        *string
	Department  *string
	Designation *string
	Email       *string
	Phone       *string
	Address     *string
}

// Merge applies patch to employee
func (e *Employee) Merge(p *EmployeePatch, at time.Time) {
	if p.Name != nil {
		e.Name = *p.Name
	}

	if p.Department != nil {
		e.Department = *p.Department
	}

	if p.Designation != nil {
		e.Designation = *p.Designation
	}

	if p.Email != nil {
		e.Email = *p.Email
	}

	if p.Phone != nil {
		e.Phone = *p.Phone
	}

	if p.Address != nil {
		e.Address = *p.Address
	}
	e.UpdatedAt = at
}
