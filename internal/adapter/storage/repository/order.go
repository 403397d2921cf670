package repository

import (
	"context"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CreateOrder writes the order row and every item row in one
// transaction. A unique violation on (order_id, product_id) rolls the
// whole order back and surfaces as ErrConflictingData.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("user_id", "total_amount", "status").
			Values(order.UserID, order.TotalAmount, order.Status).
			Suffix("returning id, created_at")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID

			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "product_id", "quantity", "unit_price", "tax_rate").
				Values(item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.TaxRate).
				Suffix("returning id")

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}

			err = tx.QueryRow(ctx, sql, args...).Scan(&item.ID)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "total_amount", "status", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.Items, err = r.listOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "total_amount", "status", "created_at").
		From("orders").
		OrderBy("id")

	return r.listOrders(ctx, statement)
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "total_amount", "status", "created_at").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	return r.listOrders(ctx, statement)
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "total_amount", "status", "created_at").
		From("orders").
		Where(sq.Eq{"status": status}).
		OrderBy("id")

	return r.listOrders(ctx, statement)
}

func (r *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", status).
		Where(sq.Eq{"id": orderID}).
		Suffix("returning id, user_id, total_amount, status, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.Items, err = r.listOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) ReadOrderItem(ctx context.Context, itemID uint64) (*domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "product_id", "quantity", "unit_price", "tax_rate").
		From("order_items").
		Where(sq.Eq{"id": itemID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	item := domain.OrderItem{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductID,
		&item.Quantity,
		&item.UnitPrice,
		&item.TaxRate,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &item, nil
}

// listOrderItems returns items in insertion order, which is the order
// the lines were submitted in.
func (r *Repository) listOrderItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "product_id", "quantity", "unit_price", "tax_rate").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.TaxRate,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return items, nil
}
