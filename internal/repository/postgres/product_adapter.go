package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	productuc "github.com/FaisalHDT/kasir-app/internal/usecase/product"
)

type ProductStoreAdapter struct {
	repo *ProductRepo
}

func NewProductStoreAdapter(repo *ProductRepo) *ProductStoreAdapter {
	return &ProductStoreAdapter{repo: repo}
}

func (a *ProductStoreAdapter) Create(ctx context.Context, name string, price int64, category string, imageURL *string) (*productuc.Product, error) {
	row, err := a.repo.Create(ctx, name, price, category, imageURL)
	if err != nil {
		return nil, err
	}
	return mapProductRowToUC(row), nil
}

func (a *ProductStoreAdapter) List(ctx context.Context) ([]productuc.Product, error) {
	rows, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]productuc.Product, 0, len(rows))
	for i := range rows {
		out = append(out, *mapProductRowToUC(&rows[i]))
	}
	return out, nil
}

func (a *ProductStoreAdapter) Update(ctx context.Context, id string, name *string, price *int64, category *string, imageURL *string) (*productuc.Product, error) {
	row, err := a.repo.Update(ctx, id, name, price, category, imageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, productuc.ErrNotFound
		}
		return nil, err
	}
	return mapProductRowToUC(row), nil
}

func (a *ProductStoreAdapter) SoftDelete(ctx context.Context, id string) error {
	deleted, err := a.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return productuc.ErrNotFound
	}
	return nil
}

func mapProductRowToUC(r *ProductRow) *productuc.Product {
	return &productuc.Product{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Category: r.Category,
		ImageURL: r.ImageURL,
	}
}

// Compile-time check: ensures adapter matches usecase interface
var _ productuc.ProductStore = (*ProductStoreAdapter)(nil)
