package domain

import (
	"fmt"
	"time"

	"github.com/Sak2803shi/RentalHub/pkg/xerrors"
)

type Property struct {
	PropertyID   int64     `json:"propertyId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	RentAmount   float64   `json:"rentAmount"`
	PropertyType string    `json:"propertyType"`
	IsAvailable  bool      `json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`

	OwnerID    int64   `json:"ownerId"`
	OwnerName  string  `json:"ownerName"`
	OwnerEmail string  `json:"-"`
	AgentID    *int64  `json:"agentId,omitempty"`
	AgentName  *string `json:"agentName,omitempty"`
}

type PropertyRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	RentAmount   float64 `json:"rentAmount"`
	PropertyType string  `json:"propertyType"`
	IsAvailable  bool    `json:"isAvailable"`
	OwnerID      int64   `json:"ownerId"`
	AgentID      *int64  `json:"agentId,omitempty"` // optional
}

func (r *PropertyRequest) Validate() error {
	switch {
	case len(r.Title) < 3 || len(r.Title) > 100:
		return fmt.Errorf("%w: title must be between 3 and 100 characters", xerrors.ErrValidation)
	case len(r.Description) < 10 || len(r.Description) > 500:
		return fmt.Errorf("%w: description must be between 10 and 500 characters", xerrors.ErrValidation)
	case len(r.Address) < 5 || len(r.Address) > 255:
		return fmt.Errorf("%w: address must be between 5 and 255 characters", xerrors.ErrValidation)
	case r.RentAmount <= 0:
		return fmt.Errorf("%w: rent amount must be greater than 0", xerrors.ErrValidation)
	case r.PropertyType == "":
		return fmt.Errorf("%w: property type is required", xerrors.ErrValidation)
	case r.OwnerID == 0:
		return fmt.Errorf("%w: owner is mandatory", xerrors.ErrValidation)
	}
	return nil
}

type PropertyResponse struct {
	PropertyID   int64   `json:"propertyId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	RentAmount   float64 `json:"rentAmount"`
	PropertyType string  `json:"propertyType"`
	IsAvailable  bool    `json:"isAvailable"`
	OwnerID      int64   `json:"ownerId"`
	OwnerName    string  `json:"ownerName"`
	AgentID      *int64  `json:"agentId,omitempty"`
	AgentName    *string `json:"agentName,omitempty"`
}

func (p *Property) ToResponse() PropertyResponse {
	return PropertyResponse{
		PropertyID:   p.PropertyID,
		Title:        p.Title,
		Description:  p.Description,
		Address:      p.Address,
		RentAmount:   p.RentAmount,
		PropertyType: p.PropertyType,
		IsAvailable:  p.IsAvailable,
		OwnerID:      p.OwnerID,
		OwnerName:    p.OwnerName,
		AgentID:      p.AgentID,
		AgentName:    p.AgentName,
	}
}
