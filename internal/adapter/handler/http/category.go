package http

import (
	"net/http"
	"strconv"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/LudNieto/ecommerce-go/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	Handler
	service port.CatalogService
}

func NewCategoryHandler(service port.CatalogService, logger *zap.Logger) (*CategoryHandler, error) {
	return &CategoryHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type categoryResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func newCategoryResponse(category *domain.Category) categoryResponse {
	return categoryResponse{ID: category.ID, Name: category.Name}
}

func (ch *CategoryHandler) List(ctx *gin.Context) {
	list, err := ch.service.ListCategories(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]categoryResponse, 0, len(list))
	for _, c := range list {
		result = append(result, newCategoryResponse(c))
	}

	ch.handleSuccess(ctx, result)
}

func (ch *CategoryHandler) Get(ctx *gin.Context) {
	categoryID, err := pathID(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	category, err := ch.service.GetCategory(ctx, categoryID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCategoryResponse(category))
}

func (ch *CategoryHandler) Create(ctx *gin.Context) {
	req := categoryRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	category, err := ch.service.CreateCategory(ctx, req.Name)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, newCategoryResponse(category), http.StatusCreated)
}

func (ch *CategoryHandler) Update(ctx *gin.Context) {
	categoryID, err := pathID(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	req := categoryRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	category, err := ch.service.UpdateCategory(ctx, categoryID, req.Name)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCategoryResponse(category))
}

func (ch *CategoryHandler) Delete(ctx *gin.Context) {
	categoryID, err := pathID(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	category, err := ch.service.DeleteCategory(ctx, categoryID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCategoryResponse(category))
}

func pathID(ctx *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, domain.ErrBadRequest
	}
	return id, nil
}
