package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/internal/config"
	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/pkg/clients"
)

//go:generate mockgen -source=dispatch.go -destination=mock_dispatch.go -package=dispatch

var ErrDispatchFailed = errors.New("dispatch failed")

type AccountRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}

type OrderRepo interface {
	UpdateDispatchResult(ctx context.Context, id string, status domain.OrderStatus, dispatchID *string) (bool, error)
}

// Request is the order as the dispatch provider expects it.
type Request struct {
	OrderNumber           string   `json:"orderNumber"`
	CustomerName          string   `json:"customerName"`
	CustomerAddress       string   `json:"customerAddress"`
	CustomerPhoneNumber   string   `json:"customerPhoneNumber"`
	RestaurantName        string   `json:"restaurantName"`
	RestaurantAddress     string   `json:"restaurantAddress"`
	RestaurantPhoneNumber string   `json:"restaurantPhoneNumber"`
	PickupLatitude        float64  `json:"pickupLatitude"`
	PickupLongitude       float64  `json:"pickupLongitude"`
	DeliveryLatitude      float64  `json:"deliveryLatitude"`
	DeliveryLongitude     float64  `json:"deliveryLongitude"`
	Notes                 *string  `json:"notes,omitempty"`
	TotalOrderCost        *float64 `json:"totalOrderCost,omitempty"`
}

type Response struct {
	OrderID json.RawMessage `json:"orderId"`
}

type Service struct {
	url         string
	apiKey      string
	accountRepo AccountRepo
	orderRepo   OrderRepo
	client      clients.HTTPClientI
}

func New(cfg *config.Config, accountRepo AccountRepo, orderRepo OrderRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:         cfg.DispatchAPIURL,
		apiKey:      cfg.DispatchAPIKey,
		accountRepo: accountRepo,
		orderRepo:   orderRepo,
		client:      client,
	}
}

func NewRequest(order *domain.Order, account *domain.Account) Request {
	return Request{
		OrderNumber:           order.ID,
		CustomerName:          order.CustomerName,
		CustomerAddress:       order.DeliveryAddress.Description,
		CustomerPhoneNumber:   order.CustomerPhone,
		RestaurantName:        account.BusinessName,
		RestaurantAddress:     account.PickupLocation.Description,
		RestaurantPhoneNumber: account.ContactPhone,
		PickupLatitude:        account.PickupLocation.Lat,
		PickupLongitude:       account.PickupLocation.Lng,
		DeliveryLatitude:      order.DeliveryAddress.Lat,
		DeliveryLongitude:     order.DeliveryAddress.Lng,
		Notes:                 order.Notes,
		TotalOrderCost:        order.AmountToCollect,
	}
}

// Relay makes one attempt to hand a committed order to the provider and
// records the outcome on the order. The spent credit is never returned.
// Caller cancellation is ignored; the client timeout bounds the call.
func (s *Service) Relay(ctx context.Context, order *domain.Order) error {
	ctx = context.WithoutCancel(ctx)
	dispatchID, sendErr := s.send(ctx, order)
	if sendErr != nil {
		zap.L().Error("dispatch relay failed", zap.String("order_id", order.ID), zap.Error(sendErr))
		if err := s.record(ctx, order, domain.OrderStatusDispatchError, nil); err != nil {
			return errors.Join(fmt.Errorf("%w: %v", ErrDispatchFailed, sendErr), err)
		}
		return fmt.Errorf("%w: %v", ErrDispatchFailed, sendErr)
	}

	zap.L().Info("order sent to dispatch", zap.String("order_id", order.ID), zap.String("dispatch_id", dispatchID))
	if err := s.record(ctx, order, domain.OrderStatusSentToDispatch, &dispatchID); err != nil {
		return fmt.Errorf("%w: accepted as %s but not recorded: %v", ErrDispatchFailed, dispatchID, err)
	}
	return nil
}

func (s *Service) send(ctx context.Context, order *domain.Order) (string, error) {
	account, err := s.accountRepo.FindByID(ctx, order.AccountID)
	if err != nil {
		return "", fmt.Errorf("reload account: %w", err)
	}
	if account == nil {
		return "", fmt.Errorf("account %s not found", order.AccountID)
	}

	body, err := json.Marshal(NewRequest(order, account))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+s.apiKey)

	statusCode, respBody, err := s.client.Post(ctx, s.url+"/orders", headers, body)
	if err != nil {
		return "", err
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status code %d", statusCode)
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	dispatchID, ok := parseOrderID(resp.OrderID)
	if !ok {
		return "", errors.New("response carries no order id")
	}
	return dispatchID, nil
}

func (s *Service) record(ctx context.Context, order *domain.Order, status domain.OrderStatus, dispatchID *string) error {
	updated, err := s.orderRepo.UpdateDispatchResult(ctx, order.ID, status, dispatchID)
	if err != nil {
		zap.L().Error("failed to record dispatch result", zap.String("order_id", order.ID), zap.Error(err))
		return fmt.Errorf("record dispatch result: %w", err)
	}
	if !updated {
		zap.L().Warn("order already left processing", zap.String("order_id", order.ID))
		return nil
	}
	order.Status = status
	order.DispatchID = dispatchID
	return nil
}

// parseOrderID accepts the provider id as a JSON number or string.
func parseOrderID(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", false
	}
	return n.String(), true
}
