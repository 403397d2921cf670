package http

import (
	"net/http"
	"time"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/LudNieto/ecommerce-go/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.CatalogService
}

func NewProductHandler(service port.CatalogService, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type productCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ImgURL      string  `json:"img_url"`
	Price       float64 `json:"price" binding:"required"`
	TaxRate     float64 `json:"tax_rate"`
	CategoryID  *uint64 `json:"category_id"`
}

type productResponse struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ImgURL      string          `json:"img_url,omitempty"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	CategoryID  *uint64         `json:"category_id,omitempty"`
	Status      string          `json:"status"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func newProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		ImgURL:      product.ImgURL,
		Price:       product.Price,
		TaxRate:     product.TaxRate,
		CategoryID:  product.CategoryID,
		Status:      string(product.Status),
		UpdatedAt:   product.UpdatedAt,
	}
}

func (ph *ProductHandler) List(ctx *gin.Context) {
	list, err := ph.service.ListProducts(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductListResponse(list))
}

func (ph *ProductHandler) Get(ctx *gin.Context) {
	productID, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.GetProduct(ctx, productID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) ListByCategory(ctx *gin.Context) {
	categoryID, err := pathID(ctx, "category_id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	list, err := ph.service.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductListResponse(list))
}

func (ph *ProductHandler) ListByStatus(ctx *gin.Context) {
	status, err := domain.ParseProductStatus(ctx.Param("status"))
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	list, err := ph.service.ListProductsByStatus(ctx, status)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductListResponse(list))
}

func (ph *ProductHandler) Create(ctx *gin.Context) {
	req := productCreateRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	price, err := decimal.NewFromFloat64(req.Price)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	taxRate, err := decimal.NewFromFloat64(req.TaxRate)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		ImgURL:      req.ImgURL,
		Price:       price,
		TaxRate:     taxRate,
		CategoryID:  req.CategoryID,
	}

	newProduct, err := ph.service.CreateProduct(ctx, product)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newProductResponse(newProduct), http.StatusCreated)
}

type productUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	ImgURL      *string  `json:"img_url"`
	Price       *float64 `json:"price"`
	TaxRate     *float64 `json:"tax_rate"`
	CategoryID  *uint64  `json:"category_id"`
	Status      *string  `json:"status"`
}

func (ph *ProductHandler) Update(ctx *gin.Context) {
	productID, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	req := productUpdateRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	update := domain.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		ImgURL:      req.ImgURL,
		CategoryID:  req.CategoryID,
	}

	if req.Price != nil {
		price, err := decimal.NewFromFloat64(*req.Price)
		if err != nil {
			ph.handleValidationError(ctx, err)
			return
		}
		update.Price = &price
	}
	if req.TaxRate != nil {
		taxRate, err := decimal.NewFromFloat64(*req.TaxRate)
		if err != nil {
			ph.handleValidationError(ctx, err)
			return
		}
		update.TaxRate = &taxRate
	}
	if req.Status != nil {
		status, err := domain.ParseProductStatus(*req.Status)
		if err != nil {
			ph.handleValidationError(ctx, err)
			return
		}
		update.Status = &status
	}

	product, err := ph.service.UpdateProduct(ctx, productID, &update)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) Delete(ctx *gin.Context) {
	productID, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.DeactivateProduct(ctx, productID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResponse(product))
}

func newProductListResponse(list []*domain.Product) []productResponse {
	result := make([]productResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newProductResponse(p))
	}
	return result
}
