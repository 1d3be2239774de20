package domain

import "time"

type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RoleSubcontractor   Role = "SUBCONTRACTOR"
	RoleCustResidential Role = "CUST_RESIDENTIAL"
	RoleCustCommercial  Role = "CUST_COMMERCIAL"
	RoleEmployee        Role = "EMPLOYEE"
)

// IsCustomer reports whether the role may own jobs.
func (r Role) IsCustomer() bool {
	return r == RoleCustResidential || r == RoleCustCommercial
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSubcontractor, RoleCustResidential, RoleCustCommercial, RoleEmployee:
		return true
	}
	return false
}

type ContractorStatus string

const (
	ContractorActive    ContractorStatus = "ACTIVE"
	ContractorInactive  ContractorStatus = "INACTIVE"
	ContractorSuspended ContractorStatus = "SUSPENDED"
)

type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`

	// Contractor profile. Latitude/Longitude are nil until the contractor
	// sets a base location; the matcher skips such candidates.
	Latitude   *float64         `json:"latitude,omitempty"`
	Longitude  *float64         `json:"longitude,omitempty"`
	Skills     []string         `json:"skills,omitempty"`
	HourlyRate *float64         `json:"hourly_rate,omitempty"`
	Rating     float64          `json:"rating"`
	IsVerified bool             `json:"is_verified"`
	Status     ContractorStatus `json:"status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactInfo is the customer PII block released to a contractor only
// through a JobUnlock.
type ContactInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

func (u *User) Contact() ContactInfo {
	return ContactInfo{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
	}
}
