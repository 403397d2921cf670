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

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	ProductID uint64 `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type orderCreateRequest struct {
	UserID uint64             `json:"user_id" binding:"required"`
	Items  []orderItemRequest `json:"items"`
}

type orderResponse struct {
	ID          uint64          `json:"id"`
	UserID      uint64          `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type orderItemResponse struct {
	ID        uint64          `json:"id"`
	OrderID   uint64          `json:"order_id"`
	ProductID uint64          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	return orderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
	}
}

func newOrderItemResponse(item *domain.OrderItem) orderItemResponse {
	return orderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		TaxRate:   item.TaxRate,
	}
}

func (oh *OrderHandler) Create(ctx *gin.Context) {
	req := orderCreateRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := oh.service.CreateOrder(ctx, req.UserID, items)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) Get(ctx *gin.Context) {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) List(ctx *gin.Context) {
	list, err := oh.service.ListOrders(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResponse(list))
}

func (oh *OrderHandler) ListByStatus(ctx *gin.Context) {
	status, err := domain.ParseOrderStatus(ctx.Param("status"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	list, err := oh.service.ListOrdersByStatus(ctx, status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResponse(list))
}

func (oh *OrderHandler) ListByUser(ctx *gin.Context) {
	userID, err := pathID(ctx, "user_id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	list, err := oh.service.ListOrdersByUser(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResponse(list))
}

type orderUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (oh *OrderHandler) Update(ctx *gin.Context) {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := orderUpdateRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListItems(ctx *gin.Context) {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items, err := oh.service.ListOrderItems(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderItemResponse, 0, len(items))
	for i := range items {
		result = append(result, newOrderItemResponse(&items[i]))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) GetItem(ctx *gin.Context) {
	itemID, err := pathID(ctx, "item_id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	item, err := oh.service.GetOrderItem(ctx, itemID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderItemResponse(item))
}

func newOrderListResponse(list []*domain.Order) []orderResponse {
	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}
	return result
}
