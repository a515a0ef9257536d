package domain

import "time"

type HandledBy string

const (
	HandledByOwner HandledBy = "OWNER"
	HandledByAgent HandledBy = "AGENT"
)

// AppointmentHandler is the party handling an appointment: exactly one
// owner or one agent, by construction. The invalid "both or neither"
// state of two nullable foreign keys is unrepresentable here.
type AppointmentHandler struct {
	By     HandledBy
	UserID int64
}

type Appointment struct {
	AppointmentID int64     `json:"appointmentId"`
	CustomerID    int64     `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	PropertyID    int64     `json:"propertyId"`
	PropertyTitle string    `json:"propertyTitle"`
	Handler       AppointmentHandler
	HandlerName   string    `json:"handlerName"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AppointmentRequest struct {
	CustomerID int64  `json:"customerId"`
	PropertyID int64  `json:"propertyId"`
	OwnerID    *int64 `json:"ownerId,omitempty"` // exactly one of
	AgentID    *int64 `json:"agentId,omitempty"` // these two
}

// Handler resolves the owner/agent pair into a tagged handler, or nil
// when neither is set (valid only for updates that keep the handler).
func (r *AppointmentRequest) Handler() *AppointmentHandler {
	if r.OwnerID != nil {
		return &AppointmentHandler{By: HandledByOwner, UserID: *r.OwnerID}
	}
	if r.AgentID != nil {
		return &AppointmentHandler{By: HandledByAgent, UserID: *r.AgentID}
	}
	return nil
}

// BothSet reports the XOR violation where an owner and an agent were
// supplied together.
func (r *AppointmentRequest) BothSet() bool {
	return r.OwnerID != nil && r.AgentID != nil
}

type AppointmentUpdateRequest struct {
	PropertyID *int64 `json:"propertyId,omitempty"`
	OwnerID    *int64 `json:"ownerId,omitempty"`
	AgentID    *int64 `json:"agentId,omitempty"`
}

func (r *AppointmentUpdateRequest) Handler() *AppointmentHandler {
	if r.OwnerID != nil {
		return &AppointmentHandler{By: HandledByOwner, UserID: *r.OwnerID}
	}
	if r.AgentID != nil {
		return &AppointmentHandler{By: HandledByAgent, UserID: *r.AgentID}
	}
	return nil
}

func (r *AppointmentUpdateRequest) BothSet() bool {
	return r.OwnerID != nil && r.AgentID != nil
}

type AppointmentResponse struct {
	AppointmentID int64     `json:"appointmentId"`
	CustomerID    int64     `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	PropertyID    int64     `json:"propertyId"`
	PropertyTitle string    `json:"propertyTitle"`
	HandledBy     HandledBy `json:"handledBy"`
	HandlerName   string    `json:"handlerName"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (a *Appointment) ToResponse() AppointmentResponse {
	return AppointmentResponse{
		AppointmentID: a.AppointmentID,
		CustomerID:    a.CustomerID,
		CustomerName:  a.CustomerName,
		PropertyID:    a.PropertyID,
		PropertyTitle: a.PropertyTitle,
		HandledBy:     a.Handler.By,
		HandlerName:   a.HandlerName,
		CreatedAt:     a.CreatedAt,
	}
}
