package entity

import "github.com/google/uuid"

// db model, joined with the linked user row
type Contractor struct {
	Id              uuid.UUID `json:"id" db:"id"`
	UserId          uuid.UUID `json:"userId" db:"user_id"`
	FirstName       string    `json:"firstName" db:"first_name"`
	LastName        string    `json:"lastName" db:"last_name"`
	Specialization  string    `json:"specialization" db:"specialization"`
	ExperienceYears int       `json:"experienceYears" db:"experience_years"`
	LicenseNumber   string    `json:"licenseNumber" db:"license_number"`
}

// service + repo input model
type CreateContractorInput struct {
	UserId          uuid.UUID // given
	Specialization  string    // given
	ExperienceYears int       // given
	LicenseNumber   string    // given
}

// controller model
type ContractorOutputModel struct {
	Id              string `json:"id"`
	UserId          string `json:"userId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experienceYears"`
	LicenseNumber   string `json:"licenseNumber"`
}

// db model
type EvaluationRequest struct {
	Id           uuid.UUID `json:"id" db:"id"`
	PropertyId   uuid.UUID `json:"propertyId" db:"property_id"`
	ContractorId uuid.UUID `json:"contractorId" db:"contractor_id"`
	AssignedAt   string    `json:"assignedAt" db:"assigned_at"`
	Completed    bool      `json:"completed" db:"completed"`
}

// controller model
type EvaluationRequestOutputModel struct {
	Id         string `json:"id"`
	PropertyId string `json:"propertyId"`
	AssignedAt string `json:"assignedAt"`
	Completed  bool   `json:"completed"`
}
