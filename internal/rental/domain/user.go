package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOwner    Role = "OWNER"
	RoleAgent    Role = "AGENT"
	RoleCustomer Role = "CUSTOMER"
)

// User is the shared identity record. Role specializations are separate
// rows keyed by the same user_id, not subclasses.
type User struct {
	UserID       int64     `json:"userId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phno         string    `json:"phno"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Owner struct {
	User
	Dob            *time.Time `json:"dob,omitempty"`
	VerifiedStatus bool       `json:"verifiedStatus"`
}

type Agent struct {
	User
	AgencyName     string     `json:"agencyName"`
	Dob            *time.Time `json:"dob,omitempty"`
	CommissionRate float64    `json:"commissionRate"`
}

type Customer struct {
	User
	Dob *time.Time `json:"dob,omitempty"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phno      string `json:"phno"`
	Dob       string `json:"dob"` // YYYY-MM-DD

	// Agent-only fields, ignored for other roles.
	AgencyName     string  `json:"agencyName,omitempty"`
	CommissionRate float64 `json:"commissionRate,omitempty"`
}

type OwnerResponse struct {
	UserID         int64  `json:"userId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phno           string `json:"phno"`
	Dob            string `json:"dob,omitempty"`
	VerifiedStatus bool   `json:"verifiedStatus"`
	Role           Role   `json:"role"`
}

type AgentResponse struct {
	UserID         int64   `json:"userId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phno           string  `json:"phno"`
	Dob            string  `json:"dob,omitempty"`
	AgencyName     string  `json:"agencyName"`
	CommissionRate float64 `json:"commissionRate"`
	Role           Role    `json:"role"`
}

type CustomerResponse struct {
	UserID    int64     `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phno      string    `json:"phno"`
	Dob       string    `json:"dob,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// CustomerDashboard combines a customer's profile, appointments and
// leases with the global list of available properties. The sub-fetches
// are independent; no joint consistency boundary beyond the request.
type CustomerDashboard struct {
	Profile      CustomerResponse      `json:"profile"`
	Appointments []AppointmentResponse `json:"appointments"`
	Leases       []LeaseResponse       `json:"leases"`
	Properties   []PropertyResponse    `json:"properties"`
}

const dateLayout = "2006-01-02"

func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
