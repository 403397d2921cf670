package repository

import (
	"context"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	statement := r.db.QueryBuilder.
		Insert("categories").
		Columns("name").
		Values(category.Name).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&category.ID)
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (r *Repository) ReadCategory(ctx context.Context, categoryID uint64) (*domain.Category, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name").
		From("categories").
		Where(sq.Eq{"id": categoryID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	category := domain.Category{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&category.ID, &category.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &category, nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name").
		From("categories").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Category, 0)
	for rows.Next() {
		category := domain.Category{}
		err := rows.Scan(&category.ID, &category.Name)
		if err != nil {
			return nil, err
		}
		list = append(list, &category)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	statement := r.db.QueryBuilder.
		Update("categories").
		Set("name", category.Name).
		Where(sq.Eq{"id": category.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return category, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("categories").
		Where(sq.Eq{"id": categoryID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}
