package port

import (
	"context"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// Category
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	ReadCategory(ctx context.Context, categoryID uint64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint64) error

	// Product
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uint64) ([]*domain.Product, error)
	ListProductsByStatus(ctx context.Context, status domain.ProductStatus) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// Order. CreateOrder persists the order and all its items in one
	// transaction, or nothing at all.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error)
	ReadOrderItem(ctx context.Context, itemID uint64) (*domain.OrderItem, error)
}
