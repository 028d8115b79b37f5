package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

type EmployeeRepo struct {
	db *pgxpool.Pool
}

func NewEmployeeRepo(db *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id::text, name, email, password_hash, role
		FROM employees
		WHERE email = $1
	`, email)

	var e Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.Role); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*Employee, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id::text, name, email, password_hash, role
		FROM employees
		WHERE id = $1::uuid
	`, id)

	var e Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.Role); err != nil {
		return nil, err
	}
	return &e, nil
}
