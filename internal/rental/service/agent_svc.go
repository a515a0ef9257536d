package service

import (
	"context"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AgentService struct {
	agents repository.AgentRepository
	logger *zap.Logger
}

func NewAgentService(agents repository.AgentRepository, logger *zap.Logger) *AgentService {
	return &AgentService{agents: agents, logger: logger}
}

func (s *AgentService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AgentResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	dob, err := parseDate(req.Dob)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	agent := &domain.Agent{
		User: domain.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phno:         req.Phno,
			PasswordHash: string(hash),
		},
		AgencyName:     req.AgencyName,
		Dob:            dob,
		CommissionRate: req.CommissionRate,
	}

	if err := s.agents.Create(ctx, agent); err != nil {
		return nil, err
	}

	s.logger.Info("agent registered", zap.Int64("user_id", agent.UserID))
	return agentToResponse(agent), nil
}

func (s *AgentService) GetAll(ctx context.Context) ([]domain.AgentResponse, error) {
	agents, err := s.agents.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AgentResponse, 0, len(agents))
	for i := range agents {
		out = append(out, *agentToResponse(&agents[i]))
	}
	return out, nil
}

func (s *AgentService) GetByID(ctx context.Context, id int64) (*domain.AgentResponse, error) {
	agent, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return agentToResponse(agent), nil
}

func (s *AgentService) GetByEmail(ctx context.Context, email string) (*domain.AgentResponse, error) {
	agent, err := s.agents.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return agentToResponse(agent), nil
}

func (s *AgentService) Update(ctx context.Context, id int64, req *domain.RegisterRequest) (*domain.AgentResponse, error) {
	agent, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dob, err := parseDate(req.Dob)
	if err != nil {
		return nil, err
	}

	agent.FirstName = req.FirstName
	agent.LastName = req.LastName
	agent.Phno = req.Phno
	agent.Dob = dob
	agent.AgencyName = req.AgencyName
	agent.CommissionRate = req.CommissionRate

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		agent.PasswordHash = string(hash)
	}

	if err := s.agents.Update(ctx, agent); err != nil {
		return nil, err
	}
	return agentToResponse(agent), nil
}

func (s *AgentService) Delete(ctx context.Context, id int64) error {
	return s.agents.Delete(ctx, id)
}

func agentToResponse(a *domain.Agent) *domain.AgentResponse {
	return &domain.AgentResponse{
		UserID:         a.UserID,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		Phno:           a.Phno,
		Dob:            domain.FormatDate(a.Dob),
		AgencyName:     a.AgencyName,
		CommissionRate: a.CommissionRate,
		Role:           a.Role,
	}
}
