package service

import (
	"context"
	"fmt"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"
)

// In-memory repository fakes. Each assigns ids sequentially and returns
// the same wrapped sentinels as the real pgx implementations.

type fakeOwnerRepo struct {
	owners map[int64]*domain.Owner
	nextID int64
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: map[int64]*domain.Owner{}, nextID: 1}
}

func (f *fakeOwnerRepo) Create(_ context.Context, o *domain.Owner) error {
	for _, existing := range f.owners {
		if existing.Email == o.Email {
			return xerrors.ErrEmailAlreadyInUse
		}
	}
	o.UserID = f.nextID
	o.Role = domain.RoleOwner
	f.nextID++
	cp := *o
	f.owners[o.UserID] = &cp
	return nil
}

func (f *fakeOwnerRepo) GetByID(_ context.Context, id int64) (*domain.Owner, error) {
	o, ok := f.owners[id]
	if !ok {
		return nil, fmt.Errorf("%w: owner %d", xerrors.ErrNotFound, id)
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOwnerRepo) GetByEmail(_ context.Context, email string) (*domain.Owner, error) {
	for _, o := range f.owners {
		if o.Email == email {
			cp := *o
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: owner with email %s", xerrors.ErrNotFound, email)
}

func (f *fakeOwnerRepo) List(_ context.Context) ([]domain.Owner, error) {
	var out []domain.Owner
	for _, o := range f.owners {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOwnerRepo) Update(_ context.Context, o *domain.Owner) error {
	if _, ok := f.owners[o.UserID]; !ok {
		return fmt.Errorf("%w: owner %d", xerrors.ErrNotFound, o.UserID)
	}
	cp := *o
	f.owners[o.UserID] = &cp
	return nil
}

func (f *fakeOwnerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.owners[id]; !ok {
		return fmt.Errorf("%w: owner %d", xerrors.ErrNotFound, id)
	}
	delete(f.owners, id)
	return nil
}

type fakeAgentRepo struct {
	agents map[int64]*domain.Agent
	nextID int64
}

func newFakeAgentRepo() *fakeAgentRepo {
	return &fakeAgentRepo{agents: map[int64]*domain.Agent{}, nextID: 100}
}

func (f *fakeAgentRepo) Create(_ context.Context, a *domain.Agent) error {
	a.UserID = f.nextID
	a.Role = domain.RoleAgent
	f.nextID++
	cp := *a
	f.agents[a.UserID] = &cp
	return nil
}

func (f *fakeAgentRepo) GetByID(_ context.Context, id int64) (*domain.Agent, error) {
	a, ok := f.agents[id]
	if !ok {
		return nil, fmt.Errorf("%w: agent %d", xerrors.ErrNotFound, id)
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAgentRepo) GetByEmail(_ context.Context, email string) (*domain.Agent, error) {
	for _, a := range f.agents {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: agent with email %s", xerrors.ErrNotFound, email)
}

func (f *fakeAgentRepo) List(_ context.Context) ([]domain.Agent, error) {
	var out []domain.Agent
	for _, a := range f.agents {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAgentRepo) Update(_ context.Context, a *domain.Agent) error {
	if _, ok := f.agents[a.UserID]; !ok {
		return fmt.Errorf("%w: agent %d", xerrors.ErrNotFound, a.UserID)
	}
	cp := *a
	f.agents[a.UserID] = &cp
	return nil
}

func (f *fakeAgentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.agents[id]; !ok {
		return fmt.Errorf("%w: agent %d", xerrors.ErrNotFound, id)
	}
	delete(f.agents, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]*domain.Customer{}, nextID: 200}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	for _, existing := range f.customers {
		if existing.Email == c.Email {
			return xerrors.ErrEmailAlreadyInUse
		}
	}
	c.UserID = f.nextID
	c.Role = domain.RoleCustomer
	f.nextID++
	cp := *c
	f.customers[c.UserID] = &cp
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %d", xerrors.ErrNotFound, id)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: customer with email %s", xerrors.ErrNotFound, email)
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	if _, ok := f.customers[c.UserID]; !ok {
		return fmt.Errorf("%w: customer %d", xerrors.ErrNotFound, c.UserID)
	}
	cp := *c
	f.customers[c.UserID] = &cp
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.customers[id]; !ok {
		return fmt.Errorf("%w: customer %d", xerrors.ErrNotFound, id)
	}
	delete(f.customers, id)
	return nil
}

type fakePropertyRepo struct {
	properties map[int64]*domain.Property
	nextID     int64
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[int64]*domain.Property{}, nextID: 1}
}

func (f *fakePropertyRepo) Create(_ context.Context, p *domain.Property) error {
	p.PropertyID = f.nextID
	f.nextID++
	cp := *p
	f.properties[p.PropertyID] = &cp
	return nil
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, fmt.Errorf("%w: property %d", xerrors.ErrNotFound, id)
	}
	cp := *p
	return &cp, nil
}

func (f *fakePropertyRepo) List(_ context.Context) ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range f.properties {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePropertyRepo) ListAvailable(_ context.Context) ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range f.properties {
		if p.IsAvailable {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range f.properties {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) ListByAgent(_ context.Context, agentID int64) ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range f.properties {
		if p.AgentID != nil && *p.AgentID == agentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := f.properties[p.PropertyID]; !ok {
		return fmt.Errorf("%w: property %d", xerrors.ErrNotFound, p.PropertyID)
	}
	cp := *p
	f.properties[p.PropertyID] = &cp
	return nil
}

func (f *fakePropertyRepo) SetAvailability(_ context.Context, id int64, available bool) error {
	p, ok := f.properties[id]
	if !ok {
		return fmt.Errorf("%w: property %d", xerrors.ErrNotFound, id)
	}
	p.IsAvailable = available
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.properties[id]; !ok {
		return fmt.Errorf("%w: property %d", xerrors.ErrNotFound, id)
	}
	delete(f.properties, id)
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	nextID       int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{}, nextID: 1}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) error {
	for _, existing := range f.appointments {
		if existing.CustomerID == a.CustomerID && existing.PropertyID == a.PropertyID {
			return fmt.Errorf("%w: customer already has an appointment for this property",
				xerrors.ErrDuplicate)
		}
	}
	a.AppointmentID = f.nextID
	f.nextID++
	cp := *a
	f.appointments[a.AppointmentID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, fmt.Errorf("%w: appointment %d", xerrors.ErrNotFound, id)
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByCustomer(_ context.Context, customerID int64) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appointments {
		if a.CustomerID == customerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByHandler(_ context.Context, by domain.HandledBy, handlerID int64) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appointments {
		if a.Handler.By == by && a.Handler.UserID == handlerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, a *domain.Appointment) error {
	if _, ok := f.appointments[a.AppointmentID]; !ok {
		return fmt.Errorf("%w: appointment %d", xerrors.ErrNotFound, a.AppointmentID)
	}
	cp := *a
	f.appointments[a.AppointmentID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.appointments[id]; !ok {
		return fmt.Errorf("%w: appointment %d", xerrors.ErrNotFound, id)
	}
	delete(f.appointments, id)
	return nil
}

type fakeLeaseRepo struct {
	leases map[int64]*domain.Lease
	nextID int64
}

func newFakeLeaseRepo() *fakeLeaseRepo {
	return &fakeLeaseRepo{leases: map[int64]*domain.Lease{}, nextID: 1}
}

func (f *fakeLeaseRepo) Create(_ context.Context, l *domain.Lease) error {
	l.LeaseID = f.nextID
	f.nextID++
	cp := *l
	f.leases[l.LeaseID] = &cp
	return nil
}

func (f *fakeLeaseRepo) GetByID(_ context.Context, id int64) (*domain.Lease, error) {
	l, ok := f.leases[id]
	if !ok {
		return nil, fmt.Errorf("%w: lease %d", xerrors.ErrNotFound, id)
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeaseRepo) List(_ context.Context) ([]domain.Lease, error) {
	var out []domain.Lease
	for _, l := range f.leases {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLeaseRepo) ListByCustomer(_ context.Context, customerID int64) ([]domain.Lease, error) {
	var out []domain.Lease
	for _, l := range f.leases {
		if l.CustomerUserID == customerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLeaseRepo) Update(_ context.Context, l *domain.Lease) error {
	if _, ok := f.leases[l.LeaseID]; !ok {
		return fmt.Errorf("%w: lease %d", xerrors.ErrNotFound, l.LeaseID)
	}
	cp := *l
	f.leases[l.LeaseID] = &cp
	return nil
}

func (f *fakeLeaseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.leases[id]; !ok {
		return fmt.Errorf("%w: lease %d", xerrors.ErrNotFound, id)
	}
	delete(f.leases, id)
	return nil
}
