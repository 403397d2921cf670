package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/LudNieto/ecommerce-go/internal/core/port/mock"
	"github.com/LudNieto/ecommerce-go/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository)

func product(id uint64, price, taxRate string) *domain.Product {
	return &domain.Product{
		ID:      id,
		Name:    "product",
		Price:   decimal.MustParse(price),
		TaxRate: decimal.MustParse(taxRate),
		Status:  domain.ProductStatusActive,
	}
}

func TestService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	user := domain.User{ID: 1, Name: "test", Email: "test@test.io", IsActive: true}

	type createOrderTest struct {
		name     string
		userID   uint64
		items    []domain.OrderItemInput
		mock     prepareMocks
		expError error
		expTotal string
	}

	tests := []createOrderTest{
		{
			name:   "Single line order",
			userID: 1,
			items:  []domain.OrderItemInput{{ProductID: 7, Quantity: 3}},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(product(7, "10.00", "0.10"), nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						order.ID = 42
						order.CreatedAt = time.Now()
						return order, nil
					})
			},
			expError: nil,
			expTotal: "33.00",
		},
		{
			name:   "Two lines with mixed tax rates",
			userID: 1,
			items: []domain.OrderItemInput{
				{ProductID: 7, Quantity: 3},
				{ProductID: 8, Quantity: 1},
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(product(7, "19.99", "0.21"), nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(8)).
					Return(product(8, "5.00", "0.00"), nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						order.ID = 43
						order.CreatedAt = time.Now()
						return order, nil
					})
			},
			expError: nil,
			// 3 * 19.99 * 1.21 = 72.5637, rounded with the second line to 77.56
			expTotal: "77.56",
		},
		{
			name:   "Duplicate product in one request",
			userID: 1,
			items: []domain.OrderItemInput{
				{ProductID: 7, Quantity: 2},
				{ProductID: 7, Quantity: 1},
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(product(7, "10.00", "0.10"), nil).Times(2)
			},
			expError: domain.ErrOrderDuplicateProduct,
		},
		{
			name:   "Purchaser does not exist",
			userID: 99,
			items:  []domain.OrderItemInput{{ProductID: 7, Quantity: 3}},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(99)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrUserNotFound,
		},
		{
			name:   "Zero quantity",
			userID: 1,
			items:  []domain.OrderItemInput{{ProductID: 7, Quantity: 0}},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(product(7, "10.00", "0.10"), nil)
			},
			expError: domain.ErrOrderBadQuantity,
		},
		{
			name:     "Empty item list",
			userID:   1,
			items:    []domain.OrderItemInput{},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrOrderNoItems,
		},
		{
			name:   "Second product does not exist",
			userID: 1,
			items: []domain.OrderItemInput{
				{ProductID: 7, Quantity: 1},
				{ProductID: 8, Quantity: 2},
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(product(7, "10.00", "0.10"), nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(8)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrProductNotFound,
		},
		{
			name:   "Unique violation at commit",
			userID: 1,
			items:  []domain.OrderItemInput{{ProductID: 7, Quantity: 1}},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(product(7, "10.00", "0.10"), nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
			},
			expError: domain.ErrOrderDuplicateProduct,
		},
		{
			name:   "Persistence failure",
			userID: 1,
			items:  []domain.OrderItemInput{{ProductID: 7, Quantity: 1}},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(product(7, "10.00", "0.10"), nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInternal)
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.CreateOrder(context.Background(), test.userID, test.items)

			assert.Equal(t, test.expError, err)

			if test.expError != nil {
				assert.Nil(t, result)
				return
			}

			assert.NotZero(t, result.ID)
			assert.Equal(t, test.userID, result.UserID)
			assert.Equal(t, domain.OrderStatusPending, result.Status)

			expTotal := decimal.MustParse(test.expTotal)
			assert.Zerof(t, expTotal.Cmp(result.TotalAmount),
				"total amount: want %s, got %s", expTotal, result.TotalAmount)
		})
	}
}

func TestService_CreateOrderSnapshots(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	user := domain.User{ID: 1, Name: "test", Email: "test@test.io", IsActive: true}

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)

	repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&user, nil)
	repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
		Return(product(7, "10.00", "0.10"), nil)
	repo.EXPECT().ReadProduct(gomock.Any(), uint64(8)).
		Return(product(8, "2.50", "0.21"), nil)
	repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
			order.ID = 42
			order.CreatedAt = time.Now()
			for i := range order.Items {
				order.Items[i].ID = uint64(i + 1)
				order.Items[i].OrderID = order.ID
			}
			return order, nil
		})

	s, err := service.NewService(repo, ts, logger)
	assert.NoError(t, err)

	result, err := s.CreateOrder(context.Background(), 1, []domain.OrderItemInput{
		{ProductID: 7, Quantity: 3},
		{ProductID: 8, Quantity: 2},
	})
	assert.NoError(t, err)

	// items stay in submission order with the catalog values frozen in
	assert.Len(t, result.Items, 2)

	assert.Equal(t, uint64(7), result.Items[0].ProductID)
	assert.Equal(t, 3, result.Items[0].Quantity)
	assert.Zero(t, decimal.MustParse("10.00").Cmp(result.Items[0].UnitPrice))
	assert.Zero(t, decimal.MustParse("0.10").Cmp(result.Items[0].TaxRate))

	assert.Equal(t, uint64(8), result.Items[1].ProductID)
	assert.Equal(t, 2, result.Items[1].Quantity)
	assert.Zero(t, decimal.MustParse("2.50").Cmp(result.Items[1].UnitPrice))
	assert.Zero(t, decimal.MustParse("0.21").Cmp(result.Items[1].TaxRate))

	// 3*10.00*1.10 + 2*2.50*1.21 = 33.00 + 6.05
	assert.Zero(t, decimal.MustParse("39.05").Cmp(result.TotalAmount))
}

func TestService_UpdateOrderStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	order := domain.Order{
		ID:          42,
		UserID:      1,
		TotalAmount: decimal.MustParse("33.00"),
		Status:      domain.OrderStatusCompleted,
		CreatedAt:   time.Now(),
	}

	type updateStatusTest struct {
		name     string
		orderID  uint64
		status   domain.OrderStatus
		mock     prepareMocks
		expError error
	}

	tests := []updateStatusTest{
		{
			name:    "Complete pending order",
			orderID: 42,
			status:  domain.OrderStatusCompleted,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(42), domain.OrderStatusCompleted).
					Return(&order, nil)
			},
			expError: nil,
		},
		{
			name:    "Order not found",
			orderID: 99,
			status:  domain.OrderStatusCanceled,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(99), domain.OrderStatusCanceled).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.UpdateOrderStatus(context.Background(), test.orderID, test.status)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, &order, result)
			}
		})
	}
}
