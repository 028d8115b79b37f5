package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Category string  `json:"category"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// Deletes are soft: existing sale lines keep referencing the row so
// historical reports can still resolve the product name.
type ProductStore interface {
	Create(ctx context.Context, name string, price int64, category string, imageURL *string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id string, name *string, price *int64, category *string, imageURL *string) (*Product, error)
	SoftDelete(ctx context.Context, id string) error
}

type Usecase struct {
	store ProductStore
}

func New(store ProductStore) *Usecase {
	return &Usecase{store: store}
}

type CreateInput struct {
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Category string  `json:"category"`
	ImageURL *string `json:"imageUrl"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*Product, error) {
	if in.Name == "" || in.Category == "" || in.Price < 0 {
		return nil, ErrInvalidInput
	}
	return u.store.Create(ctx, in.Name, in.Price, in.Category, in.ImageURL)
}

func (u *Usecase) List(ctx context.Context) ([]Product, error) {
	return u.store.List(ctx)
}

type UpdateInput struct {
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
	Category *string `json:"category"`
	ImageURL *string `json:"imageUrl"`
}

func (u *Usecase) Update(ctx context.Context, id string, in UpdateInput) (*Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidInput
	}
	if in.Name != nil && *in.Name == "" {
		return nil, ErrInvalidInput
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, ErrInvalidInput
	}
	return u.store.Update(ctx, id, in.Name, in.Price, in.Category, in.ImageURL)
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidInput
	}
	return u.store.SoftDelete(ctx, id)
}
