package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Customer is the subset of the rental service's customer response the
// payment service needs.
type Customer struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Owner struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Lease struct {
	LeaseID        int64   `json:"leaseId"`
	PropertyID     int64   `json:"propertyId"`
	CustomerUserID int64   `json:"customerUserId"`
	MonthlyRent    float64 `json:"monthlyRent"`
}

// RentalClient reads customer, owner and lease records from the rental
// service. The caller's bearer token is forwarded unchanged so upstream
// authorization still applies.
type RentalClient interface {
	GetCustomer(ctx context.Context, token string, id int64) (*Customer, error)
	GetOwner(ctx context.Context, token string, id int64) (*Owner, error)
	GetLease(ctx context.Context, token string, id int64) (*Lease, error)
}

type rentalClient struct {
	http   *resty.Client
	logger *zap.Logger
}

// New creates a RentalClient against baseURL. There is no retry policy;
// a slow or down rental service fails the calling request after timeout.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) RentalClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &rentalClient{http: httpClient, logger: logger}
}

func (c *rentalClient) GetCustomer(ctx context.Context, token string, id int64) (*Customer, error) {
	var customer Customer
	if err := c.get(ctx, token, fmt.Sprintf("/api/customers/%d", id), "customer", &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *rentalClient) GetOwner(ctx context.Context, token string, id int64) (*Owner, error) {
	var owner Owner
	if err := c.get(ctx, token, fmt.Sprintf("/api/owners/%d", id), "owner", &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

func (c *rentalClient) GetLease(ctx context.Context, token string, id int64) (*Lease, error) {
	var lease Lease
	if err := c.get(ctx, token, fmt.Sprintf("/api/leases/%d", id), "lease", &lease); err != nil {
		return nil, err
	}
	return &lease, nil
}

func (c *rentalClient) get(ctx context.Context, token, path, entity string, out interface{}) error {
	req := c.http.R().
		SetContext(ctx).
		SetResult(out)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Get(path)
	if err != nil {
		c.logger.Error("rental service call failed",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("rental service unreachable: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", xerrors.ErrNotFound, entity)
	case resp.IsError():
		c.logger.Error("rental service returned error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()))
		return fmt.Errorf("rental service returned status %d for %s", resp.StatusCode(), entity)
	}

	return nil
}
