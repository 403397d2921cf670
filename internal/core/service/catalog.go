package service

import (
	"context"
	"errors"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	category, err := s.repo.CreateCategory(ctx, &domain.Category{Name: name})
	if err != nil {
		s.logger.Error("Create category", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return category, nil
}

func (s *Service) GetCategory(ctx context.Context, categoryID uint64) (*domain.Category, error) {
	category, err := s.repo.ReadCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	list, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("List categories", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID uint64, name string) (*domain.Category, error) {
	category, err := s.repo.UpdateCategory(ctx, &domain.Category{ID: categoryID, Name: name})
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		s.logger.Error("Update category", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return category, nil
}

// DeleteCategory removes the category; products referencing it keep
// living with a cleared category (SET NULL in the schema).
func (s *Service) DeleteCategory(ctx context.Context, categoryID uint64) (*domain.Category, error) {
	category, err := s.repo.ReadCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	err = s.repo.DeleteCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		s.logger.Error("Delete category", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return category, nil
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.CategoryID != nil {
		_, err := s.repo.ReadCategory(ctx, *product.CategoryID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.ErrCategoryNotFound
			}
			return nil, err
		}
	}

	if product.Status == "" {
		product.Status = domain.ProductStatusActive
	}

	newProduct, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Create product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newProduct, nil
}

func (s *Service) GetProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	product, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	list, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) ListProductsByCategory(ctx context.Context, categoryID uint64) ([]*domain.Product, error) {
	list, err := s.repo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error("List products by category", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) ListProductsByStatus(ctx context.Context, status domain.ProductStatus) ([]*domain.Product, error) {
	list, err := s.repo.ListProductsByStatus(ctx, status)
	if err != nil {
		s.logger.Error("List products by status", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if len(list) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return list, nil
}

func (s *Service) UpdateProduct(ctx context.Context, productID uint64, update *domain.ProductUpdate) (*domain.Product, error) {
	product, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	if update.CategoryID != nil {
		_, err := s.repo.ReadCategory(ctx, *update.CategoryID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.ErrCategoryNotFound
			}
			return nil, err
		}
		product.CategoryID = update.CategoryID
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.ImgURL != nil {
		product.ImgURL = *update.ImgURL
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.TaxRate != nil {
		product.TaxRate = *update.TaxRate
	}
	if update.Status != nil {
		product.Status = *update.Status
	}

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Update product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return updated, nil
}

// DeactivateProduct is what DELETE on a product means here. Orders
// already referencing the product keep their snapshots.
func (s *Service) DeactivateProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	product, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	product.Status = domain.ProductStatusInactive

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Deactivate product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return updated, nil
}
