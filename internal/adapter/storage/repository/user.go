package repository

import (
	"context"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("name", "email", "password").
		Values(user.Name, user.Email, user.Password).
		Suffix("returning id, is_active, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint64) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email", "password", "is_active", "created_at").
		From("users").
		Where(sq.Eq{"id": userID})

	return r.scanUserRow(ctx, statement)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email", "password", "is_active", "created_at").
		From("users").
		Where(sq.Eq{"email": email})

	return r.scanUserRow(ctx, statement)
}

func (r *Repository) scanUserRow(ctx context.Context, statement sq.SelectBuilder) (*domain.User, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password", user.Password).
		Set("is_active", user.IsActive).
		Where(sq.Eq{"id": user.ID}).
		Suffix("returning created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return user, nil
}
