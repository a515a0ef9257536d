package domain

import "time"

type Lease struct {
	LeaseID         int64      `json:"leaseId"`
	PropertyID      int64      `json:"propertyId"`
	CustomerUserID  int64      `json:"customerUserId"`
	OwnerUserID     *int64     `json:"ownerUserId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	MonthlyRent     float64    `json:"monthlyRent"`
	SecurityDeposit float64    `json:"securityDeposit"`
	IsSigned        bool       `json:"isSigned"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type LeaseRequest struct {
	PropertyID      int64   `json:"propertyId"`
	CustomerUserID  int64   `json:"customerUserId"`
	OwnerUserID     *int64  `json:"ownerUserId,omitempty"` // optional
	StartDate       string  `json:"startDate"`             // YYYY-MM-DD
	EndDate         string  `json:"endDate"`
	MonthlyRent     float64 `json:"monthlyRent"`
	SecurityDeposit float64 `json:"securityDeposit"`
	IsSigned        bool    `json:"isSigned"`
}

type LeaseResponse struct {
	LeaseID         int64     `json:"leaseId"`
	PropertyID      int64     `json:"propertyId"`
	CustomerUserID  int64     `json:"customerUserId"`
	OwnerUserID     *int64    `json:"ownerUserId,omitempty"`
	StartDate       string    `json:"startDate,omitempty"`
	EndDate         string    `json:"endDate,omitempty"`
	MonthlyRent     float64   `json:"monthlyRent"`
	SecurityDeposit float64   `json:"securityDeposit"`
	IsSigned        bool      `json:"isSigned"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (l *Lease) ToResponse() LeaseResponse {
	return LeaseResponse{
		LeaseID:         l.LeaseID,
		PropertyID:      l.PropertyID,
		CustomerUserID:  l.CustomerUserID,
		OwnerUserID:     l.OwnerUserID,
		StartDate:       FormatDate(l.StartDate),
		EndDate:         FormatDate(l.EndDate),
		MonthlyRent:     l.MonthlyRent,
		SecurityDeposit: l.SecurityDeposit,
		IsSigned:        l.IsSigned,
		CreatedAt:       l.CreatedAt,
	}
}
