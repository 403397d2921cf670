package service

import (
	"context"
	"errors"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// CreateOrder runs the order intake workflow: the purchaser must
// exist, every line is resolved against the catalog in input order,
// prices and tax rates are snapshotted into the items, and the order
// is persisted with all items in one transaction. The first failed
// check aborts the whole request; nothing is written until every line
// has passed.
func (s *Service) CreateOrder(ctx context.Context, userID uint64, items []domain.OrderItemInput) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrOrderNoItems
	}

	_, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUserNotFound
		}
		s.logger.Error("Read user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	total := decimal.Zero
	orderItems := make([]domain.OrderItem, 0, len(items))
	seen := make(map[uint64]struct{}, len(items))

	for _, item := range items {
		product, err := s.repo.ReadProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.ErrProductNotFound
			}
			s.logger.Error("Read product", zap.Error(err))
			return nil, domain.ErrInternal
		}

		if item.Quantity <= 0 {
			return nil, domain.ErrOrderBadQuantity
		}

		// The unique (order_id, product_id) constraint would catch this
		// at commit; rejecting here saves the round-trip and gives the
		// same conflict answer.
		if _, ok := seen[item.ProductID]; ok {
			return nil, domain.ErrOrderDuplicateProduct
		}
		seen[item.ProductID] = struct{}{}

		amount, err := lineAmount(item.Quantity, product.Price, product.TaxRate)
		if err != nil {
			s.logger.Error("Line amount", zap.Error(err))
			return nil, domain.ErrInternal
		}

		total, err = total.Add(amount)
		if err != nil {
			s.logger.Error("Total amount", zap.Error(err))
			return nil, domain.ErrInternal
		}

		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			TaxRate:   product.TaxRate,
		})
	}

	order := &domain.Order{
		UserID:      userID,
		TotalAmount: total.Round(2),
		Status:      domain.OrderStatusPending,
		Items:       orderItems,
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrOrderDuplicateProduct
		}
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newOrder, nil
}

// lineAmount is quantity * price * (1 + tax rate), kept at full
// precision. Rounding to the stored 2 decimal places happens once, on
// the accumulated total.
func lineAmount(quantity int, price, taxRate decimal.Decimal) (decimal.Decimal, error) {
	qty, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}

	factor, err := decimal.One.Add(taxRate)
	if err != nil {
		return decimal.Decimal{}, err
	}

	amount, err := qty.Mul(price)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return amount.Mul(factor)
}

func (s *Service) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	list, err := s.repo.ListOrders(ctx)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("List orders by user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByStatus(ctx, status)
	if err != nil {
		s.logger.Error("List orders by status", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Update order status", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

func (s *Service) GetOrderItem(ctx context.Context, itemID uint64) (*domain.OrderItem, error) {
	item, err := s.repo.ReadOrderItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order item", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return item, nil
}

func (s *Service) ListOrderItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order.Items, nil
}
