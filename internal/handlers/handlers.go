package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/deliverypartner/docs"
	accounthandlers "github.com/GlebRadaev/deliverypartner/internal/handlers/account"
	adminhandlers "github.com/GlebRadaev/deliverypartner/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/deliverypartner/internal/handlers/auth"
	billinghandlers "github.com/GlebRadaev/deliverypartner/internal/handlers/billing"
	ordershandlers "github.com/GlebRadaev/deliverypartner/internal/handlers/orders"
	"github.com/GlebRadaev/deliverypartner/internal/service"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetAudits(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type BillingHandler interface {
	GetPlans(w http.ResponseWriter, r *http.Request)
	Checkout(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	AddCredits(w http.ResponseWriter, r *http.Request)
	SetAdminRole(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	AccountHandler AccountHandler
	OrderHandler   OrderHandler
	BillingHandler BillingHandler
	AdminHandler   AdminHandler
	JWTService     auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		AccountHandler: accounthandlers.New(s.AccountService),
		OrderHandler:   ordershandlers.New(s.OrderService),
		BillingHandler: billinghandlers.New(s.BillingService),
		AdminHandler:   adminhandlers.New(s.CreditService, s.RoleService),
		JWTService:     s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)
		r.Post("/billing/webhook", h.BillingHandler.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.JWTService))
			r.Get("/account", h.AccountHandler.GetAccount)
			r.Get("/account/audits", h.AccountHandler.GetAudits)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Get("/", h.OrderHandler.GetOrders)
			})
			r.Get("/billing/plans", h.BillingHandler.GetPlans)
			r.Post("/billing/checkout", h.BillingHandler.Checkout)
			r.Route("/admin", func(r chi.Router) {
				r.Post("/credits", h.AdminHandler.AddCredits)
				r.Post("/roles", h.AdminHandler.SetAdminRole)
				r.Get("/accounts", h.AdminHandler.ListAccounts)
			})
		})
	})

	return r
}
