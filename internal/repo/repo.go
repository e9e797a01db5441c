package repo

import (
	"github.com/GlebRadaev/deliverypartner/internal/pg"
	accountrepo "github.com/GlebRadaev/deliverypartner/internal/repo/account-repo"
	auditrepo "github.com/GlebRadaev/deliverypartner/internal/repo/audit-repo"
	eventrepo "github.com/GlebRadaev/deliverypartner/internal/repo/event-repo"
	identityrepo "github.com/GlebRadaev/deliverypartner/internal/repo/identity-repo"
	orderrepo "github.com/GlebRadaev/deliverypartner/internal/repo/order-repo"
	planrepo "github.com/GlebRadaev/deliverypartner/internal/repo/plan-repo"
)

// Repositories share one connection; queries join the transaction carried in ctx.
type Repositories struct {
	IdentityRepo *identityrepo.Repository
	AccountRepo  *accountrepo.Repository
	OrderRepo    *orderrepo.Repository
	AuditRepo    *auditrepo.Repository
	EventRepo    *eventrepo.Repository
	PlanRepo     *planrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		IdentityRepo: identityrepo.New(conn),
		AccountRepo:  accountrepo.New(conn),
		OrderRepo:    orderrepo.New(conn),
		AuditRepo:    auditrepo.New(conn),
		EventRepo:    eventrepo.New(conn),
		PlanRepo:     planrepo.New(conn),
	}
}
