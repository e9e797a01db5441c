package service

import (
	"context"

	"github.com/GlebRadaev/deliverypartner/internal/config"
	"github.com/GlebRadaev/deliverypartner/internal/dispatch"
	"github.com/GlebRadaev/deliverypartner/internal/handlers/account"
	"github.com/GlebRadaev/deliverypartner/internal/handlers/admin"
	"github.com/GlebRadaev/deliverypartner/internal/handlers/auth"
	"github.com/GlebRadaev/deliverypartner/internal/handlers/billing"
	"github.com/GlebRadaev/deliverypartner/internal/handlers/orders"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
	"github.com/GlebRadaev/deliverypartner/internal/repo"
	"github.com/GlebRadaev/deliverypartner/internal/service/authservice"
	"github.com/GlebRadaev/deliverypartner/internal/service/creditservice"
	"github.com/GlebRadaev/deliverypartner/internal/service/orderservice"
	"github.com/GlebRadaev/deliverypartner/internal/service/paymentservice"
	pkgauth "github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/clients"
)

const tokenIssuer = "deliverypartner"

type AdminBootstrapper interface {
	EnsureAdmin(ctx context.Context, email string) error
}

type Services struct {
	AuthService    auth.Service
	AccountService account.Service
	OrderService   orders.Service
	BillingService billing.Service
	CreditService  admin.CreditService
	RoleService    admin.RoleService
	Bootstrapper   AdminBootstrapper
	JWTService     pkgauth.JWTServiceInterface
}

func New(
	cfg *config.Config,
	repo *repo.Repositories,
	txManager pg.TXManager,
	httpClient clients.HTTPClientI,
	checkout paymentservice.CheckoutClient,
) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret, tokenIssuer)
	dispatcher := dispatch.New(cfg, repo.AccountRepo, repo.OrderRepo, httpClient)

	authService := authservice.New(repo.IdentityRepo, repo.AccountRepo, &pkgauth.HashService{}, jwtService, cfg.TokenTTL)
	creditService := creditservice.New(repo.AccountRepo, repo.AuditRepo, txManager)
	orderService := orderservice.New(repo.OrderRepo, repo.AccountRepo, txManager, dispatcher)
	paymentService := paymentservice.New(
		repo.PlanRepo,
		repo.AccountRepo,
		repo.AuditRepo,
		repo.EventRepo,
		txManager,
		checkout,
		cfg.StripeWebhookSecret,
	)

	return &Services{
		AuthService:    authService,
		AccountService: creditService,
		OrderService:   orderService,
		BillingService: paymentService,
		CreditService:  creditService,
		RoleService:    authService,
		Bootstrapper:   authService,
		JWTService:     jwtService,
	}
}
