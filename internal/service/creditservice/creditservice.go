package creditservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/validate"
)

//go:generate mockgen -source=creditservice.go -destination=mock_creditservice.go -package=creditservice

type AccountRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	AddCredits(ctx context.Context, id string, amount int64) (int64, bool, error)
	List(ctx context.Context) ([]domain.Account, error)
}

type AuditRepo interface {
	Create(ctx context.Context, audit *domain.CreditAudit) error
	FindByAccountID(ctx context.Context, accountID string) ([]domain.CreditAudit, error)
}

type Service struct {
	accountRepo AccountRepo
	auditRepo   AuditRepo
	txManager   pg.TXManager
}

func New(accountRepo AccountRepo, auditRepo AuditRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
	}
}

var ErrAccountNotFound = errors.New("account not found")

// AddCredits grants credits on behalf of an administrator and records who did it.
func (s *Service) AddCredits(ctx context.Context, caller domain.Caller, req *dto.AddCreditsRequestDTO) (int64, error) {
	if err := auth.Authorize(caller, auth.CapabilityGrantCredits); err != nil {
		zap.L().Warn("credit grant refused", zap.String("caller", caller.ID), zap.Error(err))
		return 0, err
	}

	req.AccountID = strings.TrimSpace(req.AccountID)
	req.Reason = strings.TrimSpace(req.Reason)
	if err := validate.Struct(req); err != nil {
		return 0, err
	}

	account, err := s.accountRepo.FindByID(ctx, req.AccountID)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, validate.NewError("accountId", "exists")
	}

	var balance int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newBalance, found, err := s.accountRepo.AddCredits(ctx, req.AccountID, req.Amount)
		if err != nil {
			return err
		}
		if !found {
			return validate.NewError("accountId", "exists")
		}
		balance = newBalance
		return s.auditRepo.Create(ctx, &domain.CreditAudit{
			ID:        uuid.NewString(),
			AccountID: req.AccountID,
			ActorID:   caller.ID,
			Amount:    req.Amount,
			Reason:    req.Reason,
			EventTag:  domain.EventTagAdminAdjustment,
		})
	})
	if err != nil {
		zap.L().Error("can't add credits", zap.String("account_id", req.AccountID), zap.Error(err))
		return 0, err
	}

	zap.L().Info("credits granted by admin",
		zap.String("admin_id", caller.ID),
		zap.String("account_id", req.AccountID),
		zap.Int64("amount", req.Amount),
		zap.Int64("balance", balance),
	)
	return balance, nil
}

func (s *Service) ListAccounts(ctx context.Context, caller domain.Caller) ([]domain.Account, error) {
	if err := auth.Authorize(caller, auth.CapabilityListAccounts); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (s *Service) GetAccount(ctx context.Context, caller domain.Caller) (*domain.Account, error) {
	if err := auth.Authorize(caller, auth.CapabilityOwnAccount); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) GetAudits(ctx context.Context, caller domain.Caller) ([]domain.CreditAudit, error) {
	if err := auth.Authorize(caller, auth.CapabilityOwnAccount); err != nil {
		return nil, err
	}
	audits, err := s.auditRepo.FindByAccountID(ctx, caller.ID)
	if err != nil {
		zap.L().Error("failed to get credit audits", zap.Error(err))
		return nil, err
	}
	return audits, nil
}
