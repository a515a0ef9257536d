package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetCustomerForwardsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/api/customers/200", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Customer{UserID: 200, FirstName: "Cara", LastName: "Brook"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, zap.NewNop())

	customer, err := c.GetCustomer(context.Background(), "tok-abc", 200)
	require.NoError(t, err)
	assert.Equal(t, "Cara", customer.FirstName)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestGetOwnerMaps404ToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, zap.NewNop())

	_, err := c.GetOwner(context.Background(), "tok", 999)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestGetLeaseSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, zap.NewNop())

	_, err := c.GetLease(context.Background(), "tok", 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, xerrors.ErrNotFound)
}

func TestClientTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, 50*time.Millisecond, zap.NewNop())

	_, err := c.GetCustomer(context.Background(), "tok", 200)
	assert.Error(t, err)
}
