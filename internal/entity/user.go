package entity

import (
	"github.com/google/uuid"
)

// db model
type User struct {
	Id               uuid.UUID `json:"id" db:"id"`
	Username         string    `json:"username" db:"username"`
	Email            string    `json:"email" db:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	FirstName        string    `json:"firstName" db:"first_name"`
	LastName         string    `json:"lastName" db:"last_name"`
	Role             string    `json:"role" db:"role"`
	Phone            string    `json:"phone" db:"phone"`
	NationalId       string    `json:"nationalId" db:"national_id"`
	RegistrationDate string    `json:"registrationDate" db:"registration_date"`
}

// service + repo input model
type CreateUserInput struct {
	Username     string // given
	Email        string // given
	PasswordHash string // set by the auth service, never the raw password
	FirstName    string // given
	LastName     string // given
	Role         string // given, one of common.Role*
	Phone        string // given
	NationalId   string // given
	// Id UUID sets automatically
	// RegistrationDate sets automatically
}

// service input model; contractor profile fields are read only when
// Role is contractor
type SignupInput struct {
	Username        string
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Role            string
	Phone           string
	NationalId      string
	Specialization  string
	ExperienceYears int
	LicenseNumber   string
}

// controller model
type UserOutputModel struct {
	Id               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Role             string `json:"role"`
	Phone            string `json:"phone"`
	RegistrationDate string `json:"registrationDate"`
}

// login/signup response: the SPA stores the token and branches on user.role
type AuthOutputModel struct {
	Token string          `json:"token"`
	User  UserOutputModel `json:"user"`
}
