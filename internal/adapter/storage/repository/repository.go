package repository

import (
	"github.com/LudNieto/ecommerce-go/internal/adapter/storage"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}
