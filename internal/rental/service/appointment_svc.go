package service

import (
	"context"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/repository"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"go.uber.org/zap"
)

type AppointmentService struct {
	appointments repository.AppointmentRepository
	properties   repository.PropertyRepository
	customers    repository.CustomerRepository
	owners       repository.OwnerRepository
	agents       repository.AgentRepository
	logger       *zap.Logger
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	properties repository.PropertyRepository,
	customers repository.CustomerRepository,
	owners repository.OwnerRepository,
	agents repository.AgentRepository,
	logger *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		properties:   properties,
		customers:    customers,
		owners:       owners,
		agents:       agents,
		logger:       logger,
	}
}

func (s *AppointmentService) Create(ctx context.Context, req *domain.AppointmentRequest) (*domain.AppointmentResponse, error) {
	if req.BothSet() {
		return nil, xerrors.ErrHandlerRequired
	}
	handler := req.Handler()
	if handler == nil {
		return nil, xerrors.ErrHandlerRequired
	}

	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsAvailable {
		return nil, xerrors.ErrPropertyUnavailable
	}

	if err := s.verifyHandler(ctx, handler); err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		CustomerID: req.CustomerID,
		PropertyID: req.PropertyID,
		Handler:    *handler,
	}

	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.logger.Info("appointment booked",
		zap.Int64("appointment_id", appt.AppointmentID),
		zap.Int64("customer_id", appt.CustomerID),
		zap.String("handled_by", string(handler.By)))

	return s.GetByID(ctx, appt.AppointmentID)
}

func (s *AppointmentService) GetAll(ctx context.Context) ([]domain.AppointmentResponse, error) {
	return s.toResponses(s.appointments.List(ctx))
}

func (s *AppointmentService) GetByCustomer(ctx context.Context, customerID int64) ([]domain.AppointmentResponse, error) {
	return s.toResponses(s.appointments.ListByCustomer(ctx, customerID))
}

func (s *AppointmentService) GetByOwner(ctx context.Context, ownerID int64) ([]domain.AppointmentResponse, error) {
	return s.toResponses(s.appointments.ListByHandler(ctx, domain.HandledByOwner, ownerID))
}

func (s *AppointmentService) GetByAgent(ctx context.Context, agentID int64) ([]domain.AppointmentResponse, error) {
	return s.toResponses(s.appointments.ListByHandler(ctx, domain.HandledByAgent, agentID))
}

func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*domain.AppointmentResponse, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := appt.ToResponse()
	return &resp, nil
}

// Update reschedules an appointment. A new handler replaces the old one
// regardless of kind, so an owner-handled viewing can be handed off to
// an agent and back. Omitting both keeps the current handler.
func (s *AppointmentService) Update(ctx context.Context, id int64, req *domain.AppointmentUpdateRequest) (*domain.AppointmentResponse, error) {
	if req.BothSet() {
		return nil, xerrors.ErrHandlerRequired
	}

	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PropertyID != nil {
		property, err := s.properties.GetByID(ctx, *req.PropertyID)
		if err != nil {
			return nil, err
		}
		if !property.IsAvailable {
			return nil, xerrors.ErrPropertyUnavailable
		}
		appt.PropertyID = *req.PropertyID
	}

	if handler := req.Handler(); handler != nil {
		if err := s.verifyHandler(ctx, handler); err != nil {
			return nil, err
		}
		appt.Handler = *handler
	}

	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	return s.appointments.Delete(ctx, id)
}

func (s *AppointmentService) verifyHandler(ctx context.Context, h *domain.AppointmentHandler) error {
	switch h.By {
	case domain.HandledByOwner:
		_, err := s.owners.GetByID(ctx, h.UserID)
		return err
	case domain.HandledByAgent:
		_, err := s.agents.GetByID(ctx, h.UserID)
		return err
	}
	return xerrors.ErrHandlerRequired
}

func (s *AppointmentService) toResponses(appts []domain.Appointment, err error) ([]domain.AppointmentResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]domain.AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, appts[i].ToResponse())
	}
	return out, nil
}
