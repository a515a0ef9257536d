package domain

import "time"

const StatusPaid = "PAID"

type Payment struct {
	PaymentID      int64     `json:"paymentId"`
	LeaseID        int64     `json:"leaseId"`
	CustomerUserID int64     `json:"customerUserId"`
	OwnerUserID    int64     `json:"ownerUserId"`
	Amount         float64   `json:"amount"`
	PaymentMethod  string    `json:"paymentMethod"`
	Status         string    `json:"status"`
	PaymentDate    time.Time `json:"paymentDate"`
}

type PaymentRequest struct {
	LeaseID        int64   `json:"leaseId"`
	CustomerUserID int64   `json:"customerUserId"`
	OwnerUserID    int64   `json:"ownerUserId"`
	Amount         float64 `json:"amount"`
	PaymentMethod  string  `json:"paymentMethod"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// PaymentResponse carries display names fetched from the rental service
// at read time, so renames there show up here without a local copy.
type PaymentResponse struct {
	PaymentID      int64     `json:"paymentId"`
	LeaseID        int64     `json:"leaseId"`
	CustomerUserID int64     `json:"customerUserId"`
	CustomerName   string    `json:"customerName"`
	OwnerUserID    int64     `json:"ownerUserId"`
	OwnerName      string    `json:"ownerName"`
	Amount         float64   `json:"amount"`
	PaymentMethod  string    `json:"paymentMethod"`
	Status         string    `json:"status"`
	PaymentDate    time.Time `json:"paymentDate"`
}
