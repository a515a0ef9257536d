package router

import (
	"net/http"
	"time"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/handler"
	"github.com/Sak2803shi/RentalHub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	Owner       *handler.OwnerHandler
	Agent       *handler.AgentHandler
	Customer    *handler.CustomerHandler
	Admin       *handler.AdminHandler
	Property    *handler.PropertyHandler
	Appointment *handler.AppointmentHandler
	Lease       *handler.LeaseHandler
}

func New(h Handlers, auth *middleware.AuthMiddleware, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/api/auth/login", h.Auth.Login)

	// Self-service registration stays open; everything else needs a token.
	r.Post("/api/owners/register", h.Owner.Register)
	r.Post("/api/agents/register", h.Agent.Register)
	r.Post("/api/customers/register", h.Customer.Register)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require)

		r.Route("/api/owners", func(r chi.Router) {
			r.Get("/", h.Owner.GetAll)
			r.Get("/{id}", h.Owner.GetByID)
			r.Get("/email/{email}", h.Owner.GetByEmail)
			r.Put("/{id}", h.Owner.Update)
			r.Delete("/{id}", h.Owner.Delete)
		})

		r.Route("/api/agents", func(r chi.Router) {
			r.Get("/", h.Agent.GetAll)
			r.Get("/{id}", h.Agent.GetByID)
			r.Get("/email/{email}", h.Agent.GetByEmail)
			r.Put("/{id}", h.Agent.Update)
			r.Delete("/{id}", h.Agent.Delete)
		})

		r.Route("/api/customers", func(r chi.Router) {
			r.Get("/", h.Customer.GetAll)
			r.Get("/{id}", h.Customer.GetByID)
			r.Get("/email/{email}", h.Customer.GetByEmail)
			r.Get("/{id}/dashboard", h.Customer.Dashboard)
			r.Put("/{id}", h.Customer.Update)
			r.Delete("/{id}", h.Customer.Delete)
		})

		r.Route("/api/properties", func(r chi.Router) {
			r.Post("/", h.Property.Create)
			r.Get("/", h.Property.GetAll)
			r.Get("/available", h.Property.GetAvailable)
			r.Get("/{id}", h.Property.GetByID)
			r.Get("/owner/{ownerId}", h.Property.GetByOwner)
			r.Get("/agent/{agentId}", h.Property.GetByAgent)
			r.Put("/{id}", h.Property.Update)
			r.Put("/{id}/availability", h.Property.SetAvailability)
			r.Delete("/{id}", h.Property.Delete)
		})

		r.Route("/api/appointments", func(r chi.Router) {
			r.Post("/", h.Appointment.Create)
			r.Get("/", h.Appointment.GetAll)
			r.Get("/customer/{id}", h.Appointment.GetByCustomer)
			r.Get("/owner/{id}", h.Appointment.GetByOwner)
			r.Get("/agent/{id}", h.Appointment.GetByAgent)
			r.Put("/{id}", h.Appointment.Update)
			r.Delete("/{id}", h.Appointment.Delete)
		})

		r.Route("/api/leases", func(r chi.Router) {
			r.Post("/", h.Lease.Create)
			r.Get("/", h.Lease.GetAll)
			r.Get("/{id}", h.Lease.GetByID)
			r.Get("/customer/{customerId}", h.Lease.GetByCustomer)
			r.Put("/{id}", h.Lease.Update)
			r.Delete("/{id}", h.Lease.Delete)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(string(domain.RoleAdmin)))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/owner", h.Admin.AddOwner)
			r.Post("/agent", h.Admin.AddAgent)
			r.Post("/customer", h.Admin.AddCustomer)
			r.Get("/users", h.Admin.GetAllUsers)
			r.Put("/user/{id}", h.Admin.UpdateUser)
			r.Delete("/user/{id}", h.Admin.DeleteUser)
		})
	})

	return r
}
