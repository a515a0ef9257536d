package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AgentRepository interface {
	Create(ctx context.Context, agent *domain.Agent) error
	GetByID(ctx context.Context, id int64) (*domain.Agent, error)
	GetByEmail(ctx context.Context, email string) (*domain.Agent, error)
	List(ctx context.Context) ([]domain.Agent, error)
	Update(ctx context.Context, agent *domain.Agent) error
	Delete(ctx context.Context, id int64) error
}

type agentRepo struct {
	db *pgxpool.Pool
}

func NewAgentRepository(db *pgxpool.Pool) AgentRepository {
	return &agentRepo{db: db}
}

func (r *agentRepo) Create(ctx context.Context, agent *domain.Agent) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, phno, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, created_at
	`, agent.FirstName, agent.LastName, agent.Email, agent.Phno,
		agent.PasswordHash, domain.RoleAgent,
	).Scan(&agent.UserID, &agent.CreatedAt)
	if err != nil {
		if xerrors.IsUniqueViolation(err) {
			return xerrors.ErrEmailAlreadyInUse
		}
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO agents (user_id, agency_name, dob, commission_rate)
		VALUES ($1, $2, $3, $4)
	`, agent.UserID, agent.AgencyName, agent.Dob, agent.CommissionRate)
	if err != nil {
		return err
	}

	agent.Role = domain.RoleAgent
	return tx.Commit(ctx)
}

const agentSelect = `
	SELECT u.user_id, u.first_name, u.last_name, u.email, u.phno,
	       u.password_hash, u.role, u.created_at, a.agency_name, a.dob, a.commission_rate
	FROM agents a
	JOIN users u ON u.user_id = a.user_id
`

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	var a domain.Agent
	err := row.Scan(&a.UserID, &a.FirstName, &a.LastName, &a.Email, &a.Phno,
		&a.PasswordHash, &a.Role, &a.CreatedAt, &a.AgencyName, &a.Dob, &a.CommissionRate)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *agentRepo) GetByID(ctx context.Context, id int64) (*domain.Agent, error) {
	agent, err := scanAgent(r.db.QueryRow(ctx, agentSelect+` WHERE a.user_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: agent %d", xerrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return agent, nil
}

func (r *agentRepo) GetByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	agent, err := scanAgent(r.db.QueryRow(ctx, agentSelect+` WHERE u.email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: agent with email %s", xerrors.ErrNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	return agent, nil
}

func (r *agentRepo) List(ctx context.Context) ([]domain.Agent, error) {
	rows, err := r.db.Query(ctx, agentSelect+` ORDER BY u.user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []domain.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, *a)
	}
	return agents, rows.Err()
}

func (r *agentRepo) Update(ctx context.Context, agent *domain.Agent) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, phno = $3, password_hash = $4
		WHERE user_id = $5
	`, agent.FirstName, agent.LastName, agent.Phno, agent.PasswordHash, agent.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: agent %d", xerrors.ErrNotFound, agent.UserID)
	}

	_, err = tx.Exec(ctx, `
		UPDATE agents SET agency_name = $1, dob = $2, commission_rate = $3 WHERE user_id = $4
	`, agent.AgencyName, agent.Dob, agent.CommissionRate, agent.UserID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *agentRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM agents WHERE user_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: agent %d", xerrors.ErrNotFound, id)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
