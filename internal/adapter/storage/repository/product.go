package repository

import (
	"context"
	"time"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const productColumns = "id, name, description, img_url, price, tax_rate, category_id, status, updated_at"

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Insert("products").
		Columns("name", "description", "img_url", "price", "tax_rate", "category_id", "status").
		Values(product.Name, product.Description, product.ImgURL,
			product.Price, product.TaxRate, product.CategoryID, product.Status).
		Suffix("returning id, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&product.ID, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *Repository) ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns).
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}

	err = scanProduct(r.db.QueryRow(ctx, sql, args...), &product)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (r *Repository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns).
		From("products").
		OrderBy("id")

	return r.listProducts(ctx, statement)
}

func (r *Repository) ListProductsByCategory(ctx context.Context, categoryID uint64) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns).
		From("products").
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("id")

	return r.listProducts(ctx, statement)
}

func (r *Repository) ListProductsByStatus(ctx context.Context, status domain.ProductStatus) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns).
		From("products").
		Where(sq.Eq{"status": status}).
		OrderBy("id")

	return r.listProducts(ctx, statement)
}

func (r *Repository) listProducts(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Product, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product := domain.Product{}
		err := scanProduct(rows, &product)
		if err != nil {
			return nil, err
		}
		list = append(list, &product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("name", product.Name).
		Set("description", product.Description).
		Set("img_url", product.ImgURL).
		Set("price", product.Price).
		Set("tax_rate", product.TaxRate).
		Set("category_id", product.CategoryID).
		Set("status", product.Status).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": product.ID}).
		Suffix("returning updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&product.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return product, nil
}

func scanProduct(row pgx.Row, product *domain.Product) error {
	return row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.ImgURL,
		&product.Price,
		&product.TaxRate,
		&product.CategoryID,
		&product.Status,
		&product.UpdatedAt,
	)
}
