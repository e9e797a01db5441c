package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
)

const orderColumns = `id, account_id, customer_name, customer_phone, delivery_description, delivery_lat, delivery_lng, notes, amount_to_collect, status, dispatch_id, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.AccountID, &o.CustomerName, &o.CustomerPhone,
		&o.DeliveryAddress.Description, &o.DeliveryAddress.Lat, &o.DeliveryAddress.Lng,
		&o.Notes, &o.AmountToCollect, &o.Status, &o.DispatchID, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (id, account_id, customer_name, customer_phone, delivery_description, delivery_lat, delivery_lng, notes, amount_to_collect, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		order.ID, order.AccountID, order.CustomerName, order.CustomerPhone,
		order.DeliveryAddress.Description, order.DeliveryAddress.Lat, order.DeliveryAddress.Lng,
		order.Notes, order.AmountToCollect, order.Status,
	).Scan(&order.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE account_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateDispatchResult moves a processing order to a terminal status. Orders
// that already left processing are not touched and false is returned.
func (r *Repository) UpdateDispatchResult(ctx context.Context, id string, status domain.OrderStatus, dispatchID *string) (bool, error) {
	if !domain.OrderStatusProcessing.CanTransition(status) {
		return false, nil
	}
	query := `
		UPDATE orders
		SET status = $1, dispatch_id = $2
		WHERE id = $3 AND status = $4
	`
	tag, err := r.db.Exec(ctx, query, status, dispatchID, id, domain.OrderStatusProcessing)
	if err != nil {
		zap.L().Error("failed to update order dispatch result", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
