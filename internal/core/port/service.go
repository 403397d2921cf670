package port

import (
	"context"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email string, password string) (*TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)

	GetUser(ctx context.Context, userID uint64) (*domain.User, error)
	UpdateUser(ctx context.Context, userID uint64, update *domain.UserUpdate) (*domain.User, error)
	DeactivateUser(ctx context.Context, userID uint64) (*domain.User, error)
}

type CatalogService interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	GetCategory(ctx context.Context, categoryID uint64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID uint64, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint64) (*domain.Category, error)

	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uint64) ([]*domain.Product, error)
	ListProductsByStatus(ctx context.Context, status domain.ProductStatus) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, productID uint64, update *domain.ProductUpdate) (*domain.Product, error)
	DeactivateProduct(ctx context.Context, productID uint64) (*domain.Product, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID uint64, items []domain.OrderItemInput) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error)
	GetOrderItem(ctx context.Context, itemID uint64) (*domain.OrderItem, error)
	ListOrderItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error)
}
