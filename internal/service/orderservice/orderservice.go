package orderservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/internal/dispatch"
	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/validate"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type AccountRepo interface {
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Account, error)
	DecrementCredit(ctx context.Context, id string) (bool, error)
}

type Repo interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByAccountID(ctx context.Context, accountID string) ([]domain.Order, error)
}

type Dispatcher interface {
	Relay(ctx context.Context, order *domain.Order) error
}

type Service struct {
	repo        Repo
	accountRepo AccountRepo
	txManager   pg.TXManager
	dispatcher  Dispatcher
}

func New(repo Repo, accountRepo AccountRepo, txManager pg.TXManager, dispatcher Dispatcher) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
		txManager:   txManager,
		dispatcher:  dispatcher,
	}
}

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAccountNotFound     = errors.New("account not found")
	ErrDispatchFailed      = dispatch.ErrDispatchFailed
)

// CreateOrder spends one credit and stores the order in a single transaction,
// then relays the committed order to dispatch. On relay failure the stored
// order is returned together with ErrDispatchFailed.
func (s *Service) CreateOrder(ctx context.Context, caller domain.Caller, req *dto.CreateOrderRequestDTO) (*domain.Order, error) {
	if err := auth.Authorize(caller, auth.CapabilityOwnAccount); err != nil {
		return nil, err
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.DeliveryAddress.Description = strings.TrimSpace(req.DeliveryAddress.Description)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:              uuid.NewString(),
		AccountID:       caller.ID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress.Domain(),
		Notes:           req.Notes,
		AmountToCollect: req.AmountToCollect,
		Status:          domain.OrderStatusProcessing,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindByIDForUpdate(ctx, caller.ID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}
		if account.Credits < 1 {
			return ErrInsufficientCredits
		}
		spent, err := s.accountRepo.DecrementCredit(ctx, caller.ID)
		if err != nil {
			return err
		}
		if !spent {
			return ErrInsufficientCredits
		}
		return s.repo.Create(ctx, order)
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientCredits) {
			zap.L().Info("order rejected, no credits left", zap.String("account_id", caller.ID))
		} else {
			zap.L().Error("can't create order", zap.String("account_id", caller.ID), zap.Error(err))
		}
		return nil, err
	}
	zap.L().Info("order created", zap.String("order_id", order.ID), zap.String("account_id", caller.ID))

	// relay runs to completion even if the caller is gone
	if err := s.dispatcher.Relay(context.WithoutCancel(ctx), order); err != nil {
		return order, err
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, caller domain.Caller) ([]domain.Order, error) {
	if err := auth.Authorize(caller, auth.CapabilityOwnAccount); err != nil {
		return nil, err
	}
	orders, err := s.repo.FindByAccountID(ctx, caller.ID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
